package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raywall/glue-catalog-toolkit/pkg/events"
	"github.com/raywall/glue-catalog-toolkit/pkg/filter"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

func historyCmd() *cobra.Command {
	var (
		limit int32
		token string
	)
	cmd := &cobra.Command{
		Use:   "history <job>",
		Short: "Lista as execuções registradas no ledger, da mais recente para a mais antiga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLedger(app)
			if err != nil {
				return err
			}
			records, next, err := l.History(cmd.Context(), args[0], limit, token)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output == "json" {
				return renderJSON(w, struct {
					Records   []ledger.RunRecord `json:"records"`
					NextToken string             `json:"nextToken,omitempty"`
				}{records, next})
			}
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.RunID, r.State, r.Source, r.ObservedAt.UTC().Format(time.RFC3339))
			}
			if next != "" {
				fmt.Fprintf(w, "next: %s\n", next)
			}
			return nil
		},
	}
	cmd.Flags().Int32Var(&limit, "limit", 20, "itens por página")
	cmd.Flags().StringVar(&token, "token", "", "token da página seguinte")
	return cmd
}

func listenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Consome os eventos de mudança de estado da fila SQS configurada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := app.Config
			if conf.Events.QueueURL == "" {
				return fmt.Errorf("events.queue_url não configurado")
			}

			var sink events.Sink = logSink(app.Logger)
			if conf.Ledger.Enabled {
				l, err := newLedger(app)
				if err != nil {
					return err
				}
				sink = events.LedgerSink{Ledger: l}
			}

			opts := []events.DispatcherOption{
				events.WithMetrics(app.Metrics),
				events.WithLogger(app.Logger),
			}
			if len(conf.Metrics.Rules) > 0 {
				fm, err := filter.NewManager()
				if err != nil {
					return err
				}
				opts = append(opts, events.WithProcessor(metrics.NewProcessor(conf.Metrics, app.Metrics, fm)))
			}

			listener := events.NewSQSListener(newSQS(app), conf.Events, events.NewDispatcher(sink, opts...))
			listener.Start(cmd.Context())
			return nil
		},
	}
}

// logSink apenas registra os eventos quando não há ledger configurado.
func logSink(l zerolog.Logger) events.SinkFunc {
	return func(_ context.Context, ev *events.JobRunEvent) error {
		l.Info().
			Str("job", ev.JobName).
			Str("run_id", ev.RunID).
			Str("state", ev.State.String()).
			Msg(ev.Message)
		return nil
	}
}
