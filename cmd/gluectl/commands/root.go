package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raywall/glue-catalog-toolkit/client"
	"github.com/raywall/glue-catalog-toolkit/pkg/cache"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/config/injector"
	"github.com/raywall/glue-catalog-toolkit/pkg/events"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/logger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/raywall/glue-catalog-toolkit/pkg/preflight"
)

// App reúne a configuração carregada e os clientes compartilhados pelos
// comandos.
type App struct {
	Config  *config.Config
	AWS     aws.Config
	Logger  zerolog.Logger
	Metrics metrics.Provider
}

var (
	configPath string
	output     string
	app        *App
)

// Construtores injetáveis para testes.
var (
	loadApp = func(ctx context.Context, path string, stderr io.Writer) (*App, error) {
		base, err := config.LoadAWS(ctx, config.AWSConf{})
		if err != nil {
			return nil, err
		}
		cfg, err := config.Load(ctx, path, injector.FromAWS(base))
		if err != nil {
			return nil, err
		}
		awsCfg, err := config.LoadAWS(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		provider, err := metrics.Setup(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		return &App{
			Config:  cfg,
			AWS:     awsCfg,
			Logger:  logger.ConfigureWriter(cfg.Logging, stderr),
			Metrics: provider,
		}, nil
	}

	newAPI = func(a *App) (client.API, error) {
		c := client.New(a.AWS,
			client.WithCatalogID(a.Config.AWS.CatalogID),
			client.WithMetrics(a.Metrics),
			client.WithLogger(a.Logger),
		)
		if !a.Config.Cache.Enabled {
			return c, nil
		}
		return cache.New(c, cache.NewRedis(a.Config.Cache), a.Config.Cache,
			cache.WithCatalogID(a.Config.AWS.CatalogID),
			cache.WithMetrics(a.Metrics),
			cache.WithLogger(a.Logger),
		), nil
	}

	newLedger = func(a *App) (*ledger.Ledger, error) {
		if !a.Config.Ledger.Enabled {
			return nil, fmt.Errorf("ledger desabilitado: defina ledger.enabled e ledger.table")
		}
		return ledger.New(dynamodb.NewFromConfig(a.AWS), a.Config.Ledger.Table,
			ledger.WithTTL(a.Config.Ledger.TTL),
			ledger.WithLogger(a.Logger),
		), nil
	}

	newChecker = func(a *App) *preflight.Checker {
		return preflight.New(dynamodb.NewFromConfig(a.AWS), s3.NewFromConfig(a.AWS))
	}

	newSQS = func(a *App) events.SQSClient {
		return sqs.NewFromConfig(a.AWS)
	}
)

// Execute monta a árvore de comandos e executa com os argumentos do processo.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRoot().ExecuteContext(ctx)
}

// NewRoot cria o comando raiz.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "gluectl",
		Short:         "Consulta o Glue Data Catalog e acompanha execuções de jobs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != "json" && output != "text" {
				return fmt.Errorf("--output deve ser json ou text, recebido %q", output)
			}
			a, err := loadApp(cmd.Context(), configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer, ok := app.Metrics.(io.Closer); ok {
				return closer.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("GLUE_TOOLKIT_CONFIG"), "arquivo YAML de configuração")
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "formato de saída (text|json)")

	root.AddCommand(
		enumCmd(),
		databaseCmd(),
		connectionCmd(),
		jobRunCmd(),
		runsCmd(),
		watchCmd(),
		historyCmd(),
		crawlerCmd(),
		listenCmd(),
	)
	return root
}
