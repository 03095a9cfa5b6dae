package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sink recebe os eventos já decodificados.
type Sink interface {
	Handle(ctx context.Context, ev *JobRunEvent) error
}

// SinkFunc adapta uma função para Sink.
type SinkFunc func(ctx context.Context, ev *JobRunEvent) error

func (f SinkFunc) Handle(ctx context.Context, ev *JobRunEvent) error { return f(ctx, ev) }

// Recorder é a parte do ledger usada pelos eventos.
type Recorder interface {
	Record(ctx context.Context, rec ledger.RunRecord) (bool, error)
}

// LedgerSink grava cada evento no ledger de execuções.
type LedgerSink struct {
	Ledger Recorder
}

func (s LedgerSink) Handle(ctx context.Context, ev *JobRunEvent) error {
	observed := ev.Time
	if observed.IsZero() {
		observed = time.Now()
	}
	_, err := s.Ledger.Record(ctx, ledger.FromJobRun(ev.JobRun(), ledger.SourceEvent, observed))
	return err
}

// Outcome é o destino de uma mensagem depois do processamento.
type Outcome int

const (
	// Ack remove a mensagem da fila.
	Ack Outcome = iota
	// Retry deixa a mensagem voltar para a fila.
	Retry
)

// Dispatcher decodifica eventos, emite métricas e entrega ao Sink.
type Dispatcher struct {
	sink      Sink
	provider  metrics.Provider
	processor *metrics.Processor
	logger    zerolog.Logger
}

type DispatcherOption func(*Dispatcher)

func WithMetrics(p metrics.Provider) DispatcherOption {
	return func(d *Dispatcher) { d.provider = p }
}

// WithProcessor liga as métricas customizadas declaradas na configuração.
func WithProcessor(p *metrics.Processor) DispatcherOption {
	return func(d *Dispatcher) { d.processor = p }
}

func WithLogger(l zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

func NewDispatcher(sink Sink, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sink:     sink,
		provider: &metrics.NoopProvider{},
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With().Str("component", "events").Logger()
	return d
}

// Dispatch processa um corpo bruto (SQS).
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) (Outcome, error) {
	ev, err := Decode(body)
	return d.deliver(ctx, ev, err)
}

// deliver decide o destino da mensagem. Estados desconhecidos e eventos de
// outros tipos são confirmados, pois reentregar não muda o resultado.
func (d *Dispatcher) deliver(ctx context.Context, ev *JobRunEvent, decodeErr error) (Outcome, error) {
	if decodeErr != nil {
		switch {
		case errors.Is(decodeErr, model.ErrUnknownValue):
			d.count("schema_skew", "")
			d.logger.Warn().Err(decodeErr).Msg("estado de execução desconhecido, evento descartado")
			return Ack, decodeErr
		case errors.Is(decodeErr, ErrUnsupportedEvent):
			d.logger.Debug().Err(decodeErr).Msg("evento ignorado")
			return Ack, nil
		default:
			d.count("malformed", "")
			d.logger.Error().Err(decodeErr).Msg("evento inválido")
			return Retry, decodeErr
		}
	}

	logger := d.logger.With().Str("job", ev.JobName).Str("run_id", ev.RunID).Str("state", ev.State.String()).Logger()

	if err := d.sink.Handle(ctx, ev); err != nil {
		d.count("sink_error", ev.State.String())
		logger.Error().Err(err).Msg("falha ao entregar evento")
		return Retry, fmt.Errorf("events: sink: %w", err)
	}

	d.count("ok", ev.State.String())
	if d.processor != nil {
		if err := d.processor.Process(ev.Vars()); err != nil {
			logger.Warn().Err(err).Msg("falha ao emitir métricas customizadas")
		}
	}

	logger.Info().Msg("evento processado")
	return Ack, nil
}

func (d *Dispatcher) count(outcome, state string) {
	tags := []string{"outcome:" + outcome}
	if state != "" {
		tags = append(tags, "state:"+state)
	}
	_ = d.provider.Count(metrics.EventCount, 1, tags)
}
