package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *Config) error {
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *Config) error {
	// IDs de métricas customizadas são únicos
	defined := make(map[string]bool)
	for _, d := range cfg.Metrics.Custom {
		if defined[d.ID] {
			return fmt.Errorf("métrica customizada duplicada: '%s'", d.ID)
		}
		defined[d.ID] = true
	}

	// Toda regra aponta para uma métrica declarada
	for _, r := range cfg.Metrics.Rules {
		if !defined[r.MetricID] {
			return fmt.Errorf("regra referencia métrica não declarada: '%s'", r.MetricID)
		}
	}

	if cfg.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval deve ser positivo, recebido %s", cfg.Watch.Interval)
	}
	if cfg.Watch.Timeout < 0 {
		return fmt.Errorf("watch.timeout não pode ser negativo")
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl deve ser positivo quando o cache está habilitado")
	}
	if cfg.Ledger.TTL < 0 {
		return fmt.Errorf("ledger.ttl não pode ser negativo")
	}

	return nil
}
