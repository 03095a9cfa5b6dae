package metrics

import "sync"

// Call registra uma chamada feita ao MockProvider.
type Call struct {
	Type  MetricType
	Name  string
	Value float64
	Tags  []string
}

// MockProvider guarda as chamadas para verificação nos testes.
type MockProvider struct {
	mu    sync.Mutex
	Calls []Call
}

func (m *MockProvider) record(t MetricType, name string, value float64, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, Call{Type: t, Name: name, Value: value, Tags: tags})
	return nil
}

func (m *MockProvider) Count(name string, value float64, tags []string) error {
	return m.record(TypeCount, name, value, tags)
}

func (m *MockProvider) Gauge(name string, value float64, tags []string) error {
	return m.record(TypeGauge, name, value, tags)
}

func (m *MockProvider) Histogram(name string, value float64, tags []string) error {
	return m.record(TypeHistogram, name, value, tags)
}

// Named devolve as chamadas feitas para a métrica informada.
func (m *MockProvider) Named(name string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
