package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/filter"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(state string) string {
	return `{
		"version": "0",
		"id": "evt-1",
		"detail-type": "Glue Job State Change",
		"source": "aws.glue",
		"account": "123456789012",
		"time": "2024-05-01T12:00:00Z",
		"region": "us-east-1",
		"resources": [],
		"detail": {
			"jobName": "nightly",
			"severity": "ERROR",
			"state": "` + state + `",
			"jobRunId": "jr_1",
			"message": "Command failed"
		}
	}`
}

// --- Mocks ---

type MockSQSClient struct {
	mock.Mock
}

func (m *MockSQSClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *MockSQSClient) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, params)
	return &sqs.DeleteMessageOutput{}, args.Error(1)
}

// collector guarda os eventos entregues de forma thread-safe.
type collector struct {
	mu     sync.Mutex
	events []*JobRunEvent
	err    error
}

func (c *collector) Handle(_ context.Context, ev *JobRunEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return c.err
}

func (c *collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

type fakeRecorder struct {
	records []ledger.RunRecord
}

func (f *fakeRecorder) Record(_ context.Context, rec ledger.RunRecord) (bool, error) {
	f.records = append(f.records, rec)
	return true, nil
}

// --- Tests ---

func TestDecode(t *testing.T) {
	ev, err := Decode([]byte(body("FAILED")))
	require.NoError(t, err)

	assert.Equal(t, "evt-1", ev.ID)
	assert.Equal(t, "nightly", ev.JobName)
	assert.Equal(t, "jr_1", ev.RunID)
	assert.Equal(t, model.JobRunStateFailed, ev.State)
	assert.Equal(t, "123456789012", ev.Account)
	assert.True(t, ev.Time.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	run := ev.JobRun()
	assert.Equal(t, "jr_1", aws.ToString(run.Id))
	assert.Equal(t, "Command failed", aws.ToString(run.ErrorMessage))
	require.NotNil(t, run.CompletedOn)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(body("WAITING")))
	assert.ErrorIs(t, err, model.ErrUnknownValue)

	_, err = Decode([]byte(body("")))
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = Decode([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = Decode([]byte(`{"source":"aws.glue","detail-type":"Glue Crawler State Change","detail":{}}`))
	assert.ErrorIs(t, err, ErrUnsupportedEvent)

	_, err = Decode([]byte(`{"source":"aws.glue","detail-type":"Glue Job State Change","detail":{"state":"RUNNING"}}`))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestDispatcher_Outcomes(t *testing.T) {
	sink := &collector{}
	provider := &metrics.MockProvider{}
	d := NewDispatcher(sink, WithMetrics(provider))
	ctx := context.Background()

	outcome, err := d.Dispatch(ctx, []byte(body("SUCCEEDED")))
	assert.NoError(t, err)
	assert.Equal(t, Ack, outcome)

	outcome, err = d.Dispatch(ctx, []byte(body("WAITING")))
	assert.Error(t, err)
	assert.Equal(t, Ack, outcome, "estado desconhecido não volta para a fila")

	outcome, err = d.Dispatch(ctx, []byte(`garbage`))
	assert.Error(t, err)
	assert.Equal(t, Retry, outcome)

	sink.err = errors.New("down")
	outcome, err = d.Dispatch(ctx, []byte(body("RUNNING")))
	assert.Error(t, err)
	assert.Equal(t, Retry, outcome)

	assert.Equal(t, 2, sink.Len())

	calls := provider.Named(metrics.EventCount)
	require.Len(t, calls, 4)
	assert.Equal(t, []string{"outcome:ok", "state:SUCCEEDED"}, calls[0].Tags)
	assert.Equal(t, []string{"outcome:schema_skew"}, calls[1].Tags)
	assert.Equal(t, []string{"outcome:malformed"}, calls[2].Tags)
	assert.Equal(t, []string{"outcome:sink_error", "state:RUNNING"}, calls[3].Tags)
}

func TestDispatcher_CustomMetrics(t *testing.T) {
	fm, err := filter.NewManager()
	require.NoError(t, err)

	provider := &metrics.MockProvider{}
	conf := config.MetricsConf{
		Custom: []config.CustomMetricDefinition{{ID: "failed", Name: "glue.job.failed", Type: "count"}},
		Rules: []config.MetricRegistration{{
			MetricID:  "failed",
			Condition: "event.state == 'FAILED'",
			Value:     "1",
			Tags:      map[string]string{"job": "event.jobName"},
		}},
	}
	d := NewDispatcher(&collector{}, WithMetrics(provider), WithProcessor(metrics.NewProcessor(conf, provider, fm)))

	_, err = d.Dispatch(context.Background(), []byte(body("FAILED")))
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), []byte(body("SUCCEEDED")))
	require.NoError(t, err)

	calls := provider.Named("glue.job.failed")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"job:nightly"}, calls[0].Tags)
}

func TestLedgerSink(t *testing.T) {
	rec := &fakeRecorder{}
	d := NewDispatcher(LedgerSink{Ledger: rec})

	_, err := d.Dispatch(context.Background(), []byte(body("TIMEOUT")))
	require.NoError(t, err)

	require.Len(t, rec.records, 1)
	assert.Equal(t, "nightly", rec.records[0].JobName)
	assert.Equal(t, model.JobRunStateTimeout, rec.records[0].State)
	assert.Equal(t, ledger.SourceEvent, rec.records[0].Source)
}

func TestSQSListener_Integration(t *testing.T) {
	mockSQS := new(MockSQSClient)
	sink := &collector{}
	queue := "https://sqs.us-east-1.amazonaws.com/123456789012/glue-events"

	mockSQS.On("ReceiveMessage", mock.Anything, mock.Anything).Return(&sqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{Body: aws.String(body("SUCCEEDED")), ReceiptHandle: aws.String("ok"), MessageId: aws.String("m1")},
			{Body: aws.String(body("WAITING")), ReceiptHandle: aws.String("skew"), MessageId: aws.String("m2")},
			{Body: aws.String(`garbage`), ReceiptHandle: aws.String("bad"), MessageId: aws.String("m3")},
		},
	}, nil).Once()
	mockSQS.On("ReceiveMessage", mock.Anything, mock.Anything).Return(&sqs.ReceiveMessageOutput{}, nil).Maybe()
	mockSQS.On("DeleteMessage", mock.Anything, mock.Anything).Return(nil, nil)

	listener := NewSQSListener(mockSQS, config.EventsConf{QueueURL: queue, WaitSeconds: 0, MaxMessages: 10}, NewDispatcher(sink))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		listener.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sink.Len() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	mockSQS.AssertCalled(t, "DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{QueueUrl: aws.String(queue), ReceiptHandle: aws.String("ok")})
	mockSQS.AssertCalled(t, "DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{QueueUrl: aws.String(queue), ReceiptHandle: aws.String("skew")})
	mockSQS.AssertNotCalled(t, "DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{QueueUrl: aws.String(queue), ReceiptHandle: aws.String("bad")})
}

func TestSQSListener_NoQueue(t *testing.T) {
	mockSQS := new(MockSQSClient)
	listener := NewSQSListener(mockSQS, config.EventsConf{}, NewDispatcher(&collector{}))

	listener.Start(context.Background())
	mockSQS.AssertNotCalled(t, "ReceiveMessage", mock.Anything, mock.Anything)
}

func TestLambdaHandler(t *testing.T) {
	sink := &collector{}
	h := NewLambdaHandler(NewDispatcher(sink))

	var ev lambdaevents.CloudWatchEvent
	require.NoError(t, json.Unmarshal([]byte(body("STOPPED")), &ev))
	assert.NoError(t, h.Handle(context.Background(), ev))
	assert.Equal(t, 1, sink.Len())

	require.NoError(t, json.Unmarshal([]byte(body("WAITING")), &ev))
	assert.NoError(t, h.Handle(context.Background(), ev), "skew é confirmado")

	sink.err = errors.New("down")
	require.NoError(t, json.Unmarshal([]byte(body("RUNNING")), &ev))
	assert.Error(t, h.Handle(context.Background(), ev))
}
