package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Config representa a estrutura do JSON de configuração (Lista de Servers)
type Config []ServerConfig

// Load carrega a configuração do arquivo padrão (emulator.json) ou via variável de ambiente.
// Retorna uma configuração vazia se o arquivo não existir, para não quebrar a inicialização.
func Load() Config {
	cfg := make(Config, 0)

	path := os.Getenv("EMULATOR_CONFIG_PATH")
	if path == "" {
		path = "emulator.json"
	}

	if err := cfg.LoadFromFile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Iniciando sem rotas emuladas")
		return cfg
	}
	return cfg
}

func (cfg *Config) LoadFromFile(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("erro ao parsear json: %w", err)
	}
	for _, server := range *cfg {
		for i, route := range server.Routes {
			if route.Operation == "" {
				return fmt.Errorf("rota %d da porta %d sem operation", i, server.Port)
			}
		}
	}
	return nil
}
