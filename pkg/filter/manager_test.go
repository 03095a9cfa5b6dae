package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/model"
)

func TestFilter_Match(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	failed := (&model.JobRun{}).WithId("jr_1").WithJobRunState(model.JobRunStateFailed).WithAttempt(2)
	running := (&model.JobRun{}).WithId("jr_2").WithJobRunState(model.JobRunStateRunning)

	tests := []struct {
		name string
		expr string
		run  *model.JobRun
		want bool
	}{
		{name: "Expressão vazia aprova", expr: "", run: running, want: true},
		{name: "Estado igual", expr: `record.JobRunState == "FAILED"`, run: failed, want: true},
		{name: "Estado diferente", expr: `record.JobRunState == "FAILED"`, run: running, want: false},
		{name: "Campo ausente", expr: `has(record.Attempt) && record.Attempt > 1`, run: running, want: false},
		{name: "Campo presente", expr: `has(record.Attempt) && record.Attempt > 1`, run: failed, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := m.Compile(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(tt.run)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_Errors(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Compile(`record.JobRunState ==`)
	assert.Error(t, err, "sintaxe inválida deve falhar na compilação")

	_, err = m.EvaluateBool(`"texto"`, map[string]interface{}{})
	assert.Error(t, err, "resultado não booleano")

	val, err := m.EvaluateValue(`vars.n * 2`, map[string]interface{}{"vars": map[string]interface{}{"n": 21}})
	require.NoError(t, err)
	assert.EqualValues(t, 42, val)
}
