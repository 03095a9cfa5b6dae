package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raywall/glue-catalog-toolkit/client"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/filter"
	"github.com/raywall/glue-catalog-toolkit/pkg/watch"
)

func runsCmd() *cobra.Command {
	var (
		expr  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "runs <job>",
		Short: "Lista as execuções de um job, opcionalmente filtradas por CEL",
		Long: `Lista as execuções de um job seguindo a paginação do serviço.

O filtro é uma expressão CEL sobre a variável record, no formato de wire:

  gluectl runs etl --filter "record.JobRunState == 'FAILED'"
  gluectl runs etl --filter "has(record.ErrorMessage)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := filter.NewManager()
			if err != nil {
				return err
			}
			f, err := fm.Compile(expr)
			if err != nil {
				return err
			}

			api, err := newAPI(app)
			if err != nil {
				return err
			}

			var matched []model.JobRun
			p := client.NewGetJobRunsPaginator(api, (&model.GetJobRunsRequest{}).WithJobName(args[0]))
			for p.HasMorePages() && (limit <= 0 || len(matched) < limit) {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return err
				}
				for i := range page.JobRuns {
					ok, err := f.Match(&page.JobRuns[i])
					if err != nil {
						return err
					}
					if ok {
						matched = append(matched, page.JobRuns[i])
					}
				}
			}
			if limit > 0 && len(matched) > limit {
				matched = matched[:limit]
			}

			if output == "json" {
				return renderJSON(cmd.OutOrStdout(), matched)
			}
			for i := range matched {
				if err := render(cmd.OutOrStdout(), &matched[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "filter", "f", "", "expressão CEL sobre record")
	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de execuções (0 = todas)")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <job> <run-id>",
		Short: "Acompanha uma execução até terminar",
		Long:  "Acompanha uma execução até terminar. Sai com erro se a execução não terminar com SUCCEEDED.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(app)
			if err != nil {
				return err
			}

			conf := app.Config.Watch
			if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
				conf.Interval = d
			}
			if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
				conf.Timeout = d
			}

			w := cmd.OutOrStdout()
			opts := []watch.Option{
				watch.WithMetrics(app.Metrics),
				watch.WithLogger(app.Logger),
				watch.OnChange(func(t watch.Transition) {
					fmt.Fprintf(w, "%s -> %s\n", stateOrNone(t.From), t.To)
				}),
			}
			if app.Config.Ledger.Enabled {
				l, err := newLedger(app)
				if err != nil {
					return err
				}
				opts = append(opts, watch.WithRecorder(l))
			}

			run, err := watch.New(api, conf, opts...).Watch(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !run.JobRunState.IsSuccess() {
				msg := ""
				if run.ErrorMessage != nil {
					msg = ": " + *run.ErrorMessage
				}
				return fmt.Errorf("execução %s terminou em %s%s", args[1], run.JobRunState, msg)
			}
			return nil
		},
	}
	cmd.Flags().Duration("interval", 0, "intervalo entre consultas (default: watch.interval)")
	cmd.Flags().Duration("timeout", 0, "prazo máximo (default: watch.timeout)")
	return cmd
}

func stateOrNone(s model.JobRunState) string {
	if s == "" {
		return "NONE"
	}
	return s.String()
}
