package filter

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// Manager gerencia a compilação e avaliação de expressões CEL sobre records
// do catálogo e eventos de execução.
type Manager struct {
	env      *cel.Env
	programs sync.Map // expressão -> cel.Program
}

// NewManager inicializa o ambiente CEL com as variáveis padrão esperadas.
func NewManager() (*Manager, error) {
	env, err := cel.NewEnv(
		cel.StdLib(),
		cel.Declarations(
			decls.NewVar("record", decls.Dyn), // record no formato JSON de wire
			decls.NewVar("event", decls.Dyn),  // evento de mudança de estado
			decls.NewVar("vars", decls.Dyn),   // valores auxiliares
		),
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}
	return &Manager{env: env}, nil
}

// EvaluateBool avalia uma condição. Expressão vazia aprova.
func (m *Manager) EvaluateBool(expression string, vars map[string]interface{}) (bool, error) {
	if expression == "" {
		return true, nil
	}

	out, err := m.eval(expression, vars)
	if err != nil {
		return false, err
	}
	if val, ok := out.(bool); ok {
		return val, nil
	}
	return false, fmt.Errorf("resultado de '%s' não é booleano", expression)
}

// EvaluateValue avalia uma expressão e devolve o valor nativo.
func (m *Manager) EvaluateValue(expression string, vars map[string]interface{}) (interface{}, error) {
	if expression == "" {
		return nil, nil
	}
	return m.eval(expression, vars)
}

func (m *Manager) eval(expression string, vars map[string]interface{}) (interface{}, error) {
	prg, err := m.program(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prg.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("erro execução CEL: %w", err)
	}
	return out.Value(), nil
}

// program compila e guarda o programa para reuso.
func (m *Manager) program(expr string) (cel.Program, error) {
	if cached, ok := m.programs.Load(expr); ok {
		return cached.(cel.Program), nil
	}

	ast, issues := m.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro compilação CEL '%s': %w", expr, issues.Err())
	}
	prg, err := m.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar programa CEL: %w", err)
	}

	m.programs.Store(expr, prg)
	return prg, nil
}

// Filter é uma condição compilada aplicada a records.
type Filter struct {
	manager *Manager
	expr    string
}

// Compile valida a expressão e devolve um Filter pronto para uso.
func (m *Manager) Compile(expr string) (*Filter, error) {
	if expr != "" {
		if _, err := m.program(expr); err != nil {
			return nil, err
		}
	}
	return &Filter{manager: m, expr: expr}, nil
}

// Match avalia o filtro sobre o record, exposto como a variável "record".
func (f *Filter) Match(record interface{}) (bool, error) {
	if f.expr == "" {
		return true, nil
	}
	doc, err := ToMap(record)
	if err != nil {
		return false, err
	}
	return f.manager.EvaluateBool(f.expr, map[string]interface{}{"record": doc})
}

// ToMap converte um record na sua forma JSON genérica. Campos ausentes não
// aparecem no mapa, então has(record.X) distingue ausente de vazio.
func ToMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("filter: encode record: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("filter: decode record: %w", err)
	}
	return doc, nil
}
