package metrics

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/filter"
)

// Processor emite as métricas customizadas declaradas no YAML, avaliando as
// regras CEL sobre cada evento.
type Processor struct {
	definitions map[string]MetricDefinition
	rules       []config.MetricRegistration
	provider    Provider
	manager     *filter.Manager
}

// NewProcessor cria um processador linkando IDs de configuração aos seus tipos reais.
func NewProcessor(conf config.MetricsConf, provider Provider, fm *filter.Manager) *Processor {
	defs := make(map[string]MetricDefinition)
	for _, d := range conf.Custom {
		defs[d.ID] = MetricDefinition{
			Name: d.Name,
			Type: MetricType(d.Type),
		}
	}

	return &Processor{
		definitions: defs,
		rules:       conf.Rules,
		provider:    provider,
		manager:     fm,
	}
}

// Process avalia todas as regras configuradas contra as variáveis informadas
// (normalmente "event").
func (p *Processor) Process(vars map[string]interface{}) error {
	for _, rule := range p.rules {
		if err := p.processSingleRule(rule, vars); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) processSingleRule(rule config.MetricRegistration, vars map[string]interface{}) error {
	def, exists := p.definitions[rule.MetricID]
	if !exists {
		return fmt.Errorf("métrica não definida: %s", rule.MetricID)
	}

	ok, err := p.manager.EvaluateBool(rule.Condition, vars)
	if err != nil {
		return fmt.Errorf("erro ao avaliar condição da métrica %s: %w", rule.MetricID, err)
	}
	if !ok {
		return nil
	}

	rawVal, err := p.manager.EvaluateValue(rule.Value, vars)
	if err != nil {
		return fmt.Errorf("erro ao avaliar valor da métrica %s: %w", rule.MetricID, err)
	}

	val, err := toFloat64(rawVal)
	if err != nil {
		return fmt.Errorf("valor da métrica %s inválido: %w", rule.MetricID, err)
	}

	keys := make([]string, 0, len(rule.Tags))
	for k := range rule.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tags []string
	for _, k := range keys {
		tagVal, err := p.manager.EvaluateValue(rule.Tags[k], vars)
		if err != nil {
			return fmt.Errorf("erro ao avaliar tag %s da métrica %s: %w", k, rule.MetricID, err)
		}
		tags = append(tags, fmt.Sprintf("%s:%v", k, tagVal))
	}

	switch def.Type {
	case TypeCount:
		return p.provider.Count(def.Name, val, tags)
	case TypeGauge:
		return p.provider.Gauge(def.Name, val, tags)
	case TypeHistogram:
		return p.provider.Histogram(def.Name, val, tags)
	default:
		return fmt.Errorf("tipo de métrica desconhecido: %s", def.Type)
	}
}

// Helper para converter retorno do CEL (int, int64, float64, string) para float64
func toFloat64(v interface{}) (float64, error) {
	switch i := v.(type) {
	case float64:
		return i, nil
	case float32:
		return float64(i), nil
	case int:
		return float64(i), nil
	case int64:
		return float64(i), nil
	case uint64:
		return float64(i), nil
	case string:
		return strconv.ParseFloat(i, 64)
	default:
		return 0, fmt.Errorf("tipo numérico não suportado: %T", v)
	}
}
