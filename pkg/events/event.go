package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/raywall/glue-catalog-toolkit/model"
)

const (
	// SourceGlue é o campo source dos eventos publicados pelo Glue.
	SourceGlue = "aws.glue"

	// DetailTypeJobStateChange identifica mudanças de estado de execução.
	DetailTypeJobStateChange = "Glue Job State Change"
)

var (
	// ErrMalformedEvent indica um corpo que não é um evento EventBridge válido.
	ErrMalformedEvent = errors.New("events: malformed event")

	// ErrUnsupportedEvent indica um evento válido que não é de execução de job.
	ErrUnsupportedEvent = errors.New("events: unsupported event")
)

// JobRunEvent é a mudança de estado de uma execução de job.
type JobRunEvent struct {
	ID       string            `json:"id"`
	Time     time.Time         `json:"time"`
	Account  string            `json:"account"`
	Region   string            `json:"region"`
	JobName  string            `json:"jobName"`
	RunID    string            `json:"jobRunId"`
	State    model.JobRunState `json:"state"`
	Severity string            `json:"severity"`
	Message  string            `json:"message"`
}

type jobStateDetail struct {
	JobName  string            `json:"jobName"`
	RunID    string            `json:"jobRunId"`
	State    model.JobRunState `json:"state"`
	Severity string            `json:"severity"`
	Message  string            `json:"message"`
}

// Decode lê o envelope EventBridge (como entregue pelo SQS) e devolve o
// evento de execução. Um estado desconhecido gera erro com
// model.ErrUnknownValue na cadeia.
func Decode(body []byte) (*JobRunEvent, error) {
	var envelope lambdaevents.CloudWatchEvent
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return FromCloudWatch(envelope)
}

// FromCloudWatch converte um evento já decodificado pelo runtime Lambda.
func FromCloudWatch(envelope lambdaevents.CloudWatchEvent) (*JobRunEvent, error) {
	if envelope.Source != SourceGlue || envelope.DetailType != DetailTypeJobStateChange {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedEvent, envelope.Source, envelope.DetailType)
	}
	if len(envelope.Detail) == 0 {
		return nil, fmt.Errorf("%w: empty detail", ErrMalformedEvent)
	}

	var detail jobStateDetail
	if err := json.Unmarshal(envelope.Detail, &detail); err != nil {
		if errors.Is(err, model.ErrUnknownValue) || errors.Is(err, model.ErrInvalidValue) {
			return nil, fmt.Errorf("events: detail.state: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if detail.JobName == "" || detail.RunID == "" || detail.State == "" {
		return nil, fmt.Errorf("%w: jobName, jobRunId and state are required", ErrMalformedEvent)
	}

	return &JobRunEvent{
		ID:       envelope.ID,
		Time:     envelope.Time,
		Account:  envelope.AccountID,
		Region:   envelope.Region,
		JobName:  detail.JobName,
		RunID:    detail.RunID,
		State:    detail.State,
		Severity: detail.Severity,
		Message:  detail.Message,
	}, nil
}

// JobRun projeta o evento no record do catálogo.
func (e *JobRunEvent) JobRun() *model.JobRun {
	run := (&model.JobRun{}).WithId(e.RunID).WithJobName(e.JobName)
	run.JobRunState = e.State
	if e.State.IsTerminal() && !e.Time.IsZero() {
		run.CompletedOn = model.NewTimestamp(e.Time)
	}
	if e.Message != "" && !e.State.IsSuccess() {
		run.SetErrorMessage(e.Message)
	}
	return run
}

// Vars expõe o evento às expressões CEL das métricas customizadas.
func (e *JobRunEvent) Vars() map[string]interface{} {
	return map[string]interface{}{
		"event": map[string]interface{}{
			"id":       e.ID,
			"account":  e.Account,
			"region":   e.Region,
			"jobName":  e.JobName,
			"jobRunId": e.RunID,
			"state":    e.State.String(),
			"severity": e.Severity,
			"message":  e.Message,
			"terminal": e.State.IsTerminal(),
			"success":  e.State.IsSuccess(),
		},
	}
}
