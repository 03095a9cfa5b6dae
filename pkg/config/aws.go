package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWS carrega a configuração da AWS (env vars, profile, IAM role) com a
// região e o endpoint definidos no arquivo.
func LoadAWS(ctx context.Context, conf AWSConf) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}
	if conf.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(conf.Profile))
	}
	if conf.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(conf.Endpoint))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("falha ao carregar configuração AWS: %w", err)
	}
	return cfg, nil
}
