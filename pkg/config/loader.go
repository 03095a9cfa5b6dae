package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Injector resolve referências ${...} nos valores carregados.
type Injector interface {
	Inject(ctx context.Context, target interface{}) error
}

// Load lê o YAML em path (opcional), aplica as variáveis de ambiente,
// resolve as referências ${env.X}, ${ssm./p} e ${secret.id} e valida o
// resultado. inj pode ser nil quando não há referências a resolver.
func Load(ctx context.Context, path string, inj Injector) (*Config, error) {
	// defaults, depois arquivo, depois ambiente
	cfg := &Config{}
	if err := ApplyDefaults(cfg); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("erro ao decodificar YAML: %w", err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if inj != nil {
		if err := inj.Inject(ctx, cfg); err != nil {
			return nil, fmt.Errorf("erro ao resolver referências: %w", err)
		}
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv é o atalho usado pela Lambda: apenas variáveis de ambiente.
func LoadFromEnv(ctx context.Context, inj Injector) (*Config, error) {
	path := os.Getenv("GLUE_TOOLKIT_CONFIG")
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	return Load(ctx, path, inj)
}
