package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"

	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/logger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

type deps struct {
	aws     aws.Config
	logger  zerolog.Logger
	metrics metrics.Provider
}

func newDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	awsCfg, err := config.LoadAWS(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	provider, err := metrics.Setup(cfg.Metrics)
	if err != nil {
		return nil, err
	}
	return &deps{
		aws:     awsCfg,
		logger:  logger.Configure(cfg.Logging),
		metrics: provider,
	}, nil
}
