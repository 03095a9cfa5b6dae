package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

// scripted devolve os estados na ordem e repete o último.
type scripted struct {
	mu     sync.Mutex
	states []model.JobRunState
	calls  int
	err    error
}

func (s *scripted) GetJobRun(_ context.Context, req *model.GetJobRunRequest) (*model.GetJobRunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	i := s.calls
	if i >= len(s.states) {
		i = len(s.states) - 1
	}
	s.calls++
	run := (&model.JobRun{}).WithId(*req.RunId).WithJobName(*req.JobName)
	run.JobRunState = s.states[i]
	return &model.GetJobRunResult{JobRun: run}, nil
}

type memRecorder struct {
	records []ledger.RunRecord
	err     error
}

func (m *memRecorder) Record(_ context.Context, rec ledger.RunRecord) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.records = append(m.records, rec)
	return true, nil
}

var fast = config.WatchConf{Interval: time.Millisecond}

func TestWatch_UntilTerminal(t *testing.T) {
	api := &scripted{states: []model.JobRunState{
		model.JobRunStateStarting,
		model.JobRunStateRunning,
		model.JobRunStateRunning,
		model.JobRunStateSucceeded,
	}}
	rec := &memRecorder{}
	provider := &metrics.MockProvider{}
	var transitions []Transition

	w := New(api, fast, WithRecorder(rec), WithMetrics(provider), OnChange(func(tr Transition) {
		transitions = append(transitions, tr)
	}))

	run, err := w.Watch(context.Background(), "nightly", "jr_1")
	require.NoError(t, err)
	assert.Equal(t, model.JobRunStateSucceeded, run.JobRunState)
	assert.Equal(t, 4, api.calls)

	require.Len(t, transitions, 3)
	assert.Equal(t, model.JobRunState(""), transitions[0].From)
	assert.Equal(t, model.JobRunStateRunning, transitions[2].From)
	assert.Equal(t, model.JobRunStateSucceeded, transitions[2].To)

	require.Len(t, rec.records, 3)
	assert.Equal(t, ledger.SourcePoll, rec.records[2].Source)
	assert.Equal(t, "jr_1", rec.records[2].RunID)

	calls := provider.Named(metrics.TransitionCount)
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"from:NONE", "to:STARTING"}, calls[0].Tags)
}

func TestWatch_AlreadyTerminal(t *testing.T) {
	api := &scripted{states: []model.JobRunState{model.JobRunStateFailed}}
	run, err := New(api, fast).Watch(context.Background(), "nightly", "jr_1")
	require.NoError(t, err)
	assert.Equal(t, model.JobRunStateFailed, run.JobRunState)
	assert.Equal(t, 1, api.calls)
}

func TestWatch_Timeout(t *testing.T) {
	api := &scripted{states: []model.JobRunState{model.JobRunStateRunning}}
	w := New(api, config.WatchConf{Interval: time.Millisecond, Timeout: 20 * time.Millisecond})

	_, err := w.Watch(context.Background(), "nightly", "jr_1")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestWatch_Cancelled(t *testing.T) {
	api := &scripted{states: []model.JobRunState{model.JobRunStateRunning}}
	ctx, cancel := context.WithCancel(context.Background())
	w := New(api, fast, OnChange(func(Transition) { cancel() }))

	_, err := w.Watch(ctx, "nightly", "jr_1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch_Errors(t *testing.T) {
	skew := &model.EnumError{Enum: "JobRunState", Value: "WAITING", Err: model.ErrUnknownValue}
	_, err := New(&scripted{err: skew}, fast).Watch(context.Background(), "nightly", "jr_1")
	assert.ErrorIs(t, err, model.ErrUnknownValue)

	api := &scripted{states: []model.JobRunState{model.JobRunStateRunning}}
	_, err = New(api, fast, WithRecorder(&memRecorder{err: errors.New("throttled")})).Watch(context.Background(), "nightly", "jr_1")
	assert.ErrorContains(t, err, "record transition")
}

func TestNew_DefaultInterval(t *testing.T) {
	w := New(&scripted{}, config.WatchConf{})
	assert.Equal(t, 30*time.Second, w.interval)
}
