package events

import (
	"context"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LambdaHandler recebe eventos entregues diretamente por uma regra do
// EventBridge com alvo Lambda.
type LambdaHandler struct {
	dispatcher *Dispatcher
}

func NewLambdaHandler(d *Dispatcher) *LambdaHandler {
	return &LambdaHandler{dispatcher: d}
}

// Handle devolve erro apenas quando vale a pena o Lambda tentar de novo.
func (h *LambdaHandler) Handle(ctx context.Context, ev lambdaevents.CloudWatchEvent) error {
	start := time.Now()

	corrID := ev.ID
	if corrID == "" {
		corrID = uuid.NewString()
	}
	logger := h.dispatcher.logger.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	decoded, err := FromCloudWatch(ev)
	outcome, err := h.dispatcher.deliver(ctx, decoded, err)

	log.Ctx(ctx).Debug().
		Str("detail_type", ev.DetailType).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda event completed")

	if outcome == Retry {
		return err
	}
	return nil
}
