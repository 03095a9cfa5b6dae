package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadFromFile(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.LoadFromFile(filepath.Join("..", "testdata", "glue.json")))

	require.Len(t, cfg, 1)
	assert.Equal(t, 4566, cfg[0].Port)
	assert.Equal(t, "GetDatabase", cfg[0].Routes[0].Operation)
}

func TestConfig_Load_InvalidFile(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.LoadFromFile("arquivo_inexistente.json"))
}

func TestConfig_Load_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ "não é um array": true }`), 0o600))

	var cfg Config
	assert.Error(t, cfg.LoadFromFile(path))
}

func TestConfig_Load_MissingOperation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noop.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"port": 1, "routes": [{"response": {"status": 200}}]}]`), 0o600))

	var cfg Config
	assert.Error(t, cfg.LoadFromFile(path))
}

func TestLoad_FallbackToEmpty(t *testing.T) {
	t.Setenv("EMULATOR_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.json"))
	assert.Empty(t, Load())
}
