package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

// ErrTimeout indica que a execução não terminou dentro do prazo configurado.
var ErrTimeout = errors.New("watch: timed out waiting for job run")

// JobRunGetter é a parte do client.API usada pelo watcher.
type JobRunGetter interface {
	GetJobRun(ctx context.Context, req *model.GetJobRunRequest) (*model.GetJobRunResult, error)
}

// Recorder grava as transições observadas (normalmente o ledger).
type Recorder interface {
	Record(ctx context.Context, rec ledger.RunRecord) (bool, error)
}

// Transition descreve uma mudança de estado observada.
type Transition struct {
	From model.JobRunState
	To   model.JobRunState
	Run  *model.JobRun
}

// Watcher acompanha uma execução até ela terminar.
type Watcher struct {
	api      JobRunGetter
	recorder Recorder
	interval time.Duration
	timeout  time.Duration
	provider metrics.Provider
	onChange func(Transition)
	now      func() time.Time
	logger   zerolog.Logger
}

type Option func(*Watcher)

// WithRecorder grava cada transição no ledger.
func WithRecorder(r Recorder) Option {
	return func(w *Watcher) { w.recorder = r }
}

func WithMetrics(p metrics.Provider) Option {
	return func(w *Watcher) { w.provider = p }
}

// OnChange registra um callback chamado a cada transição.
func OnChange(fn func(Transition)) Option {
	return func(w *Watcher) { w.onChange = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

func New(api JobRunGetter, conf config.WatchConf, opts ...Option) *Watcher {
	w := &Watcher{
		api:      api,
		interval: conf.Interval,
		timeout:  conf.Timeout,
		provider: &metrics.NoopProvider{},
		now:      time.Now,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.interval <= 0 {
		w.interval = 30 * time.Second
	}
	w.logger = w.logger.With().Str("component", "watch").Logger()
	return w
}

// Watch consulta GetJobRun até o estado ser terminal e devolve o último
// snapshot. Um estado fora do vocabulário interrompe o acompanhamento.
func (w *Watcher) Watch(ctx context.Context, jobName, runID string) (*model.JobRun, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	logger := w.logger.With().Str("job", jobName).Str("run_id", runID).Logger()
	req := (&model.GetJobRunRequest{}).WithJobName(jobName).WithRunId(runID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last model.JobRunState
	for {
		out, err := w.api.GetJobRun(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, w.ctxErr(ctx)
			}
			return nil, fmt.Errorf("watch: get job run: %w", err)
		}
		if out.JobRun == nil {
			return nil, fmt.Errorf("watch: empty job run for %s/%s", jobName, runID)
		}

		run := out.JobRun
		if run.JobRunState != last {
			if err := w.transition(ctx, Transition{From: last, To: run.JobRunState, Run: run}); err != nil {
				return nil, err
			}
			logger.Info().Str("from", last.String()).Str("to", run.JobRunState.String()).Msg("transição de estado")
			last = run.JobRunState
		}

		if run.JobRunState.IsTerminal() {
			return run, nil
		}

		select {
		case <-ctx.Done():
			return nil, w.ctxErr(ctx)
		case <-ticker.C:
		}
	}
}

func (w *Watcher) transition(ctx context.Context, t Transition) error {
	from := t.From.String()
	if t.From == "" {
		from = "NONE"
	}
	_ = w.provider.Count(metrics.TransitionCount, 1, []string{"from:" + from, "to:" + t.To.String()})

	if w.recorder != nil {
		rec := ledger.FromJobRun(t.Run, ledger.SourcePoll, w.now())
		if _, err := w.recorder.Record(ctx, rec); err != nil {
			return fmt.Errorf("watch: record transition: %w", err)
		}
	}
	if w.onChange != nil {
		w.onChange(t)
	}
	return nil
}

func (w *Watcher) ctxErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
	return ctx.Err()
}
