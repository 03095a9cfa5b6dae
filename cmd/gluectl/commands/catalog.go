package commands

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/preflight"
)

func databaseCmd() *cobra.Command {
	var catalogID string
	cmd := &cobra.Command{
		Use:   "database <nome>",
		Short: "Mostra a definição de um database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(app)
			if err != nil {
				return err
			}
			req := (&model.GetDatabaseRequest{}).WithName(args[0])
			if catalogID != "" {
				req.SetCatalogId(catalogID)
			}
			out, err := api.GetDatabase(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), out.Database)
		},
	}
	cmd.Flags().StringVar(&catalogID, "catalog-id", "", "catálogo (default: conta da credencial ou aws.catalog_id)")
	return cmd
}

func connectionCmd() *cobra.Command {
	var showPassword bool
	cmd := &cobra.Command{
		Use:   "connection <nome>",
		Short: "Mostra uma conexão do catálogo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(app)
			if err != nil {
				return err
			}
			req := &model.GetConnectionRequest{Name: aws.String(args[0]), HidePassword: aws.Bool(!showPassword)}
			out, err := api.GetConnection(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), out.Connection)
		},
	}
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "inclui a senha (ignora o cache)")
	return cmd
}

func jobRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job-run <job> <run-id>",
		Short: "Mostra uma execução de job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(app)
			if err != nil {
				return err
			}
			out, err := api.GetJobRun(cmd.Context(), (&model.GetJobRunRequest{}).WithJobName(args[0]).WithRunId(args[1]))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), out.JobRun)
		},
	}
}

func crawlerCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "crawler <nome>",
		Short: "Mostra um crawler e, com --check, verifica se os alvos existem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(app)
			if err != nil {
				return err
			}
			out, err := api.GetCrawler(cmd.Context(), (&model.GetCrawlerRequest{}).WithName(args[0]))
			if err != nil {
				return err
			}
			if !check {
				return render(cmd.OutOrStdout(), out.Crawler)
			}

			report, err := newChecker(app).Crawler(cmd.Context(), out.Crawler)
			if err != nil {
				return err
			}
			if err := printReport(cmd, report); err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d alvo(s) do crawler %s com problema", len(report.Failed()), report.Crawler)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verifica os alvos S3 e DynamoDB")
	return cmd
}

func printReport(cmd *cobra.Command, report preflight.Report) error {
	if output == "json" {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	w := cmd.OutOrStdout()
	for _, r := range report.Results {
		line := fmt.Sprintf("%-9s %-10s %s", r.Kind, r.Status, r.Path)
		if r.Detail != "" {
			line += " (" + r.Detail + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
