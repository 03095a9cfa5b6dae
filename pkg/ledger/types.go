package ledger

import (
	"time"

	"github.com/raywall/glue-catalog-toolkit/dyndb"
	"github.com/raywall/glue-catalog-toolkit/model"
)

var (
	// ErrNotFound indica que a execução não está no ledger.
	ErrNotFound = dyndb.ErrNotFound

	// ErrInvalidToken indica um token de paginação ilegível.
	ErrInvalidToken = dyndb.ErrInvalidToken
)

// Source identifica de onde veio a observação.
type Source string

const (
	SourcePoll  Source = "poll"
	SourceEvent Source = "event"
)

// RunRecord é o snapshot de uma execução de job gravado no ledger.
// job_name é a chave de partição e run_id a chave de ordenação.
type RunRecord struct {
	JobName       string            `dynamodbav:"job_name" json:"jobName"`
	RunID         string            `dynamodbav:"run_id" json:"runId"`
	State         model.JobRunState `dynamodbav:"state" json:"state"`
	Attempt       int32             `dynamodbav:"attempt" json:"attempt"`
	StartedOn     *time.Time        `dynamodbav:"started_on,omitempty" json:"startedOn,omitempty"`
	CompletedOn   *time.Time        `dynamodbav:"completed_on,omitempty" json:"completedOn,omitempty"`
	ExecutionTime int32             `dynamodbav:"execution_time,omitempty" json:"executionTime,omitempty"`
	ErrorMessage  string            `dynamodbav:"error_message,omitempty" json:"errorMessage,omitempty"`
	Source        Source            `dynamodbav:"source" json:"source"`
	ObservedAt    time.Time         `dynamodbav:"observed_at,unixtime" json:"observedAt"`
	ExpiresAt     int64             `dynamodbav:"expires_at,omitempty" json:"-"`
}

// FromJobRun converte o JobRun do Glue em um RunRecord. Campos ausentes no
// JobRun ficam zerados.
func FromJobRun(run *model.JobRun, source Source, observedAt time.Time) RunRecord {
	rec := RunRecord{
		State:      run.JobRunState,
		Source:     source,
		ObservedAt: observedAt.UTC(),
	}
	if run.JobName != nil {
		rec.JobName = *run.JobName
	}
	if run.Id != nil {
		rec.RunID = *run.Id
	}
	if run.Attempt != nil {
		rec.Attempt = *run.Attempt
	}
	if run.StartedOn != nil {
		t := run.StartedOn.UTC()
		rec.StartedOn = &t
	}
	if run.CompletedOn != nil {
		t := run.CompletedOn.UTC()
		rec.CompletedOn = &t
	}
	if run.ExecutionTime != nil {
		rec.ExecutionTime = *run.ExecutionTime
	}
	if run.ErrorMessage != nil {
		rec.ErrorMessage = *run.ErrorMessage
	}
	return rec
}

// Terminal informa se a execução já terminou.
func (r RunRecord) Terminal() bool {
	return r.State.IsTerminal()
}
