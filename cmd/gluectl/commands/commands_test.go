package commands

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/client"
	"github.com/raywall/glue-catalog-toolkit/dyndb"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/ledger"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/raywall/glue-catalog-toolkit/pkg/preflight"
	emulator "github.com/raywall/glue-catalog-toolkit/tools/emulator/config"
)

// setup aponta os comandos para o emulador e restaura os construtores ao
// final do teste.
func setup(t *testing.T) {
	t.Helper()

	var routes emulator.Config
	require.NoError(t, routes.LoadFromFile(filepath.Join("..", "..", "..", "tools", "emulator", "testdata", "glue.json")))
	srv := httptest.NewServer(routes[0].Router())
	t.Cleanup(srv.Close)

	origLoad, origAPI, origLedger, origChecker := loadApp, newAPI, newLedger, newChecker
	t.Cleanup(func() {
		loadApp, newAPI, newLedger, newChecker = origLoad, origAPI, origLedger, origChecker
	})

	loadApp = func(ctx context.Context, path string, _ io.Writer) (*App, error) {
		cfg, err := config.Load(ctx, "", nil)
		if err != nil {
			return nil, err
		}
		cfg.Watch.Interval = time.Millisecond
		cfg.AWS.Endpoint = srv.URL
		return &App{
			Config: cfg,
			AWS: aws.Config{
				Region:      "us-east-1",
				Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "SECRET", ""),
			},
			Logger:  zerolog.Nop(),
			Metrics: &metrics.MockProvider{},
		}, nil
	}
	newAPI = func(a *App) (client.API, error) {
		return client.New(a.AWS, client.WithEndpoint(a.Config.AWS.Endpoint), client.WithLogger(a.Logger)), nil
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEnum(t *testing.T) {
	setup(t)

	out, err := run(t, "enum", "JobRunState", "SUCCEEDED")
	require.NoError(t, err)
	assert.Equal(t, "SUCCEEDED\n", out)

	out, err = run(t, "enum", "WorkerType")
	require.NoError(t, err)
	assert.Equal(t, "Standard\nG.1X\nG.2X\n", out)

	out, err = run(t, "enum")
	require.NoError(t, err)
	assert.Contains(t, out, "CrawlState\n")
	assert.Contains(t, out, "Permission\n")

	_, err = run(t, "enum", "JobRunState", "succeeded")
	assert.ErrorIs(t, err, model.ErrUnknownValue)

	_, err = run(t, "enum", "Nope")
	assert.Error(t, err)
}

func TestDatabase(t *testing.T) {
	setup(t)

	out, err := run(t, "database", "sales")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: sales")
	assert.Contains(t, out, "LocationUri: s3://lake/sales")

	out, err = run(t, "database", "sales", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Name": "sales"`)
	assert.Contains(t, out, `"CreateTime": 1700000000`)

	_, err = run(t, "database", "missing")
	assert.ErrorContains(t, err, "EntityNotFoundException")

	_, err = run(t, "database", "sales", "-o", "yaml")
	assert.Error(t, err)
}

func TestConnection(t *testing.T) {
	setup(t)

	out, err := run(t, "connection", "pg")
	require.NoError(t, err)
	assert.Contains(t, out, "ConnectionType: JDBC")
}

func TestJobRun(t *testing.T) {
	setup(t)

	out, err := run(t, "job-run", "etl", "jr_2")
	require.NoError(t, err)
	assert.Contains(t, out, "JobRunState: FAILED")
	assert.Contains(t, out, "ErrorMessage: OutOfMemory")

	_, err = run(t, "job-run", "etl", "jr_skew")
	assert.ErrorIs(t, err, model.ErrUnknownValue)
}

func TestRuns(t *testing.T) {
	setup(t)

	out, err := run(t, "runs", "etl")
	require.NoError(t, err)
	assert.Contains(t, out, "jr_3")
	assert.Contains(t, out, "jr_2")
	assert.Contains(t, out, "jr_1")

	out, err = run(t, "runs", "etl", "--filter", "record.JobRunState == 'FAILED'")
	require.NoError(t, err)
	assert.Contains(t, out, "jr_2")
	assert.NotContains(t, out, "jr_3")
	assert.NotContains(t, out, "jr_1")

	out, err = run(t, "runs", "etl", "--limit", "1", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Id": "jr_3"`)
	assert.NotContains(t, out, "jr_2")

	_, err = run(t, "runs", "etl", "--filter", "record.(")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	setup(t)

	out, err := run(t, "watch", "etl", "jr_1")
	require.NoError(t, err)
	assert.Equal(t, "NONE -> SUCCEEDED\n", out)

	out, err = run(t, "watch", "etl", "jr_2")
	assert.ErrorContains(t, err, "FAILED: OutOfMemory")
	assert.Equal(t, "NONE -> FAILED\n", out)
}

func TestCrawlerCheck(t *testing.T) {
	setup(t)
	newChecker = func(*App) *preflight.Checker {
		return preflight.New(
			&preflight.MockDynamoDB{DescribeTableFunc: func(context.Context, *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
				return nil, &dbtypes.ResourceNotFoundException{Message: aws.String("not found")}
			}},
			&preflight.MockS3{ListObjectsV2Func: func(context.Context, *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
				return &s3.ListObjectsV2Output{Contents: []s3types.Object{{Key: aws.String("orders/part-0")}}}, nil
			}},
		)
	}

	out, err := run(t, "crawler", "orders-crawler")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: orders-crawler")

	out, err = run(t, "crawler", "orders-crawler", "--check")
	assert.ErrorContains(t, err, "1 alvo(s)")
	assert.Contains(t, out, "reachable  s3://lake/orders/")
	assert.Contains(t, out, "missing    orders")
}

func TestHistory(t *testing.T) {
	setup(t)

	item, err := attributevalue.MarshalMap(ledger.RunRecord{
		JobName:    "etl",
		RunID:      "jr_1",
		State:      model.JobRunStateSucceeded,
		Source:     ledger.SourceEvent,
		ObservedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	newLedger = func(*App) (*ledger.Ledger, error) {
		return ledger.New(&dyndb.MockDynamoClient{
			QueryFn: func(context.Context, *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Items: []map[string]dbtypes.AttributeValue{item}}, nil
			},
		}, "runs"), nil
	}

	out, err := run(t, "history", "etl")
	require.NoError(t, err)
	assert.Equal(t, "jr_1\tSUCCEEDED\tevent\t2024-05-01T12:00:00Z\n", out)
}

func TestListen_RequiresQueue(t *testing.T) {
	setup(t)

	_, err := run(t, "listen")
	assert.ErrorContains(t, err, "events.queue_url")
}
