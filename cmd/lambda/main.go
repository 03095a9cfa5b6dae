package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog/log"

	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/config/injector"
	"github.com/raywall/glue-catalog-toolkit/pkg/events"
	"github.com/raywall/glue-catalog-toolkit/pkg/filter"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

var (
	runtime string
	// Variáveis injetáveis para mocking
	lambdaStarter   = func(handler interface{}) { lambda.Start(handler) }
	listenerStarter = func(ctx context.Context, l *events.SQSListener) { l.Start(ctx) }
	newRecorder     = func(cfg *config.Config, deps *deps) events.Recorder {
		return ledger.New(dynamodb.NewFromConfig(deps.aws), cfg.Ledger.Table,
			ledger.WithTTL(cfg.Ledger.TTL),
			ledger.WithLogger(deps.logger),
		)
	}
)

func init() {
	// lambda (default) ou sqs, para rodar como worker fora da Lambda
	runtime = os.Getenv("GLUE_RUNTIME")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, runtime); err != nil {
		log.Fatal().Err(err).Msg("FATAL")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, rt string) error {
	base, err := config.LoadAWS(ctx, config.AWSConf{})
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromEnv(ctx, injector.FromAWS(base))
	if err != nil {
		return err
	}

	d, err := newDeps(ctx, cfg)
	if err != nil {
		return err
	}
	dispatcher, err := newDispatcher(cfg, d)
	if err != nil {
		return err
	}

	switch rt {
	case "", "lambda":
		lambdaStarter(events.NewLambdaHandler(dispatcher).Handle)
		return nil
	case "sqs":
		listenerStarter(ctx, events.NewSQSListener(sqs.NewFromConfig(d.aws), cfg.Events, dispatcher))
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", rt)
	}
}

func newDispatcher(cfg *config.Config, d *deps) (*events.Dispatcher, error) {
	var sink events.Sink = events.SinkFunc(func(ctx context.Context, ev *events.JobRunEvent) error {
		d.logger.Info().Str("job", ev.JobName).Str("run_id", ev.RunID).Str("state", ev.State.String()).Msg(ev.Message)
		return nil
	})
	if cfg.Ledger.Enabled {
		sink = events.LedgerSink{Ledger: newRecorder(cfg, d)}
	}

	opts := []events.DispatcherOption{
		events.WithMetrics(d.metrics),
		events.WithLogger(d.logger),
	}
	if len(cfg.Metrics.Rules) > 0 {
		fm, err := filter.NewManager()
		if err != nil {
			return nil, err
		}
		opts = append(opts, events.WithProcessor(metrics.NewProcessor(cfg.Metrics, d.metrics, fm)))
	}
	return events.NewDispatcher(sink, opts...), nil
}
