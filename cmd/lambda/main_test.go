package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/events"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
)

type fakeRecorder struct {
	mu      sync.Mutex
	records []ledger.RunRecord
}

func (f *fakeRecorder) Record(_ context.Context, rec ledger.RunRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return true, nil
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("GLUE_TOOLKIT_CONFIG", path)
}

const ledgerConfig = `
aws:
  region: us-east-1
logging:
  enabled: false
ledger:
  enabled: true
  table: glue-runs
events:
  queue_url: https://sqs.us-east-1.amazonaws.com/123456789012/glue-events
`

func TestRun_LambdaBootstrap(t *testing.T) {
	writeConfig(t, ledgerConfig)

	rec := &fakeRecorder{}
	origStarter, origRecorder := lambdaStarter, newRecorder
	defer func() { lambdaStarter, newRecorder = origStarter, origRecorder }()

	var handler func(context.Context, lambdaevents.CloudWatchEvent) error
	lambdaStarter = func(h interface{}) {
		handler = h.(func(context.Context, lambdaevents.CloudWatchEvent) error)
	}
	newRecorder = func(cfg *config.Config, _ *deps) events.Recorder {
		assert.Equal(t, "glue-runs", cfg.Ledger.Table)
		return rec
	}

	require.NoError(t, run(context.Background(), "lambda"))
	require.NotNil(t, handler, "a Lambda não foi iniciada")

	var ev lambdaevents.CloudWatchEvent
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "evt-1",
		"detail-type": "Glue Job State Change",
		"source": "aws.glue",
		"time": "2024-05-01T12:00:00Z",
		"detail": {"jobName": "etl", "jobRunId": "jr_1", "state": "SUCCEEDED", "message": "ok"}
	}`), &ev))
	require.NoError(t, handler(context.Background(), ev))

	require.Len(t, rec.records, 1)
	assert.Equal(t, "jr_1", rec.records[0].RunID)
}

func TestRun_SQSBootstrap(t *testing.T) {
	writeConfig(t, ledgerConfig)

	origStarter, origRecorder := listenerStarter, newRecorder
	defer func() { listenerStarter, newRecorder = origStarter, origRecorder }()

	started := false
	listenerStarter = func(context.Context, *events.SQSListener) { started = true }
	newRecorder = func(*config.Config, *deps) events.Recorder { return &fakeRecorder{} }

	require.NoError(t, run(context.Background(), "sqs"))
	assert.True(t, started)
}

func TestRun_Errors(t *testing.T) {
	writeConfig(t, "logging:\n  enabled: false\n")
	assert.ErrorContains(t, run(context.Background(), "ec2"), "runtime desconhecido")

	writeConfig(t, "ledger:\n  enabled: true\n")
	assert.Error(t, run(context.Background(), "lambda"), "ledger sem tabela é inválido")
}
