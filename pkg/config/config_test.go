package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, int32(20), cfg.Events.WaitSeconds)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
aws:
  region: sa-east-1
  catalog_id: "123456789012"
logging:
  level: debug
  format: console
ledger:
  enabled: true
  table: glue-runs
watch:
  interval: 5s
`)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load(context.Background(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, "sa-east-1", cfg.AWS.Region, "arquivo vence o default")
	assert.Equal(t, "123456789012", cfg.AWS.CatalogID)
	assert.Equal(t, "warn", cfg.Logging.Level, "ambiente vence o arquivo")
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "glue-runs", cfg.Ledger.Table)
	assert.Equal(t, 5*time.Second, cfg.Watch.Interval)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

func TestLoad_ZeroInFileWinsOverDefault(t *testing.T) {
	path := writeFile(t, `
logging:
  enabled: false
events:
  wait_seconds: 0
cache:
  ttl: 0s
`)

	cfg, err := Load(context.Background(), path, nil)
	require.NoError(t, err)

	assert.False(t, cfg.Logging.Enabled)
	assert.Equal(t, int32(0), cfg.Events.WaitSeconds, "long polling desligado pelo arquivo")
	assert.Equal(t, time.Duration(0), cfg.Cache.TTL)
	assert.Equal(t, int32(10), cfg.Events.MaxMessages, "campo ausente no arquivo mantém o default")

	t.Setenv("EVENTS_WAIT_SECONDS", "5")
	cfg, err = Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(5), cfg.Events.WaitSeconds, "ambiente vence o arquivo")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ApplyDefaults(cfg))
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
}

type fakeInjector struct {
	called bool
}

func (f *fakeInjector) Inject(ctx context.Context, target interface{}) error {
	f.called = true
	target.(*Config).Ledger.Table = "from-ssm"
	return nil
}

func TestLoad_Injector(t *testing.T) {
	path := writeFile(t, "ledger:\n  enabled: true\n  table: ${ssm./glue/ledger}\n")
	inj := &fakeInjector{}

	cfg, err := Load(context.Background(), path, inj)
	require.NoError(t, err)
	assert.True(t, inj.called)
	assert.Equal(t, "from-ssm", cfg.Ledger.Table)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "Nível de log inválido", content: "logging:\n  level: verbose\n"},
		{name: "Ledger sem tabela", content: "ledger:\n  enabled: true\n"},
		{name: "Datadog sem endereço", content: "metrics:\n  datadog:\n    enabled: true\n"},
		{name: "Regra sem métrica declarada", content: "metrics:\n  rules:\n    - metric_id: nope\n      value: '1'\n"},
		{name: "Intervalo inválido no ambiente", content: "", env: map[string]string{"WATCH_INTERVAL": "soon"}},
		{name: "YAML inválido", content: "aws: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(context.Background(), writeFile(t, tt.content), nil)
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Run("Erro de conversão", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")
		cfg := &Config{}
		err := ApplyEnv(cfg)

		var fieldErr *EnvFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "DB", fieldErr.FieldName)
		assert.Equal(t, "REDIS_DB", fieldErr.EnvVar)
	})

	t.Run("Target inválido", func(t *testing.T) {
		var invalid *InvalidTargetError
		assert.ErrorAs(t, ApplyEnv(Config{}), &invalid)
	})
}
