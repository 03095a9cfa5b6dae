package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/glue-catalog-toolkit/dyndb"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observed = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleRun() *model.JobRun {
	started := model.NewTimestamp(observed.Add(-time.Minute))
	run := (&model.JobRun{}).
		WithId("jr_1").
		WithJobName("nightly").
		WithAttempt(2).
		WithErrorMessage("boom").
		WithExecutionTime(42)
	run.StartedOn = started
	run.JobRunState = model.JobRunStateFailed
	return run
}

func TestFromJobRun(t *testing.T) {
	rec := FromJobRun(sampleRun(), SourcePoll, observed)

	assert.Equal(t, "nightly", rec.JobName)
	assert.Equal(t, "jr_1", rec.RunID)
	assert.Equal(t, model.JobRunStateFailed, rec.State)
	assert.Equal(t, int32(2), rec.Attempt)
	assert.Equal(t, int32(42), rec.ExecutionTime)
	assert.Equal(t, "boom", rec.ErrorMessage)
	require.NotNil(t, rec.StartedOn)
	assert.Nil(t, rec.CompletedOn)
	assert.Equal(t, SourcePoll, rec.Source)
	assert.True(t, rec.Terminal())

	empty := FromJobRun(&model.JobRun{}, SourceEvent, observed)
	assert.Empty(t, empty.JobName)
	assert.Nil(t, empty.StartedOn)
}

func TestRecord(t *testing.T) {
	var captured *dynamodb.PutItemInput
	mock := &dyndb.MockDynamoClient{
		PutItemFn: func(_ context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	l := New(mock, "runs", WithTTL(24*time.Hour))

	ok, err := l.Record(context.Background(), FromJobRun(sampleRun(), SourcePoll, observed))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotNil(t, captured)
	assert.Equal(t, "runs", aws.ToString(captured.TableName))
	require.NotNil(t, captured.ConditionExpression)
	assert.Contains(t, *captured.ConditionExpression, "attribute_not_exists")

	// observed_at é comparado como número (unixtime), igual ao item gravado
	var numeric []string
	for _, v := range captured.ExpressionAttributeValues {
		if n, ok := v.(*types.AttributeValueMemberN); ok {
			numeric = append(numeric, n.Value)
		}
	}
	assert.Contains(t, numeric, fmt.Sprint(observed.Unix()))
	assert.Equal(t, &types.AttributeValueMemberN{Value: fmt.Sprint(observed.Unix())}, captured.Item["observed_at"])

	var stored RunRecord
	require.NoError(t, attributevalue.UnmarshalMap(captured.Item, &stored))
	assert.Equal(t, "jr_1", stored.RunID)
	assert.Equal(t, model.JobRunStateFailed, stored.State)
	assert.Equal(t, observed.Add(24*time.Hour).Unix(), stored.ExpiresAt)
}

func TestRecord_StaleObservation(t *testing.T) {
	mock := &dyndb.MockDynamoClient{
		PutItemFn: func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("stale")}
		},
	}
	l := New(mock, "runs")

	ok, err := l.Record(context.Background(), FromJobRun(sampleRun(), SourceEvent, observed))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecord_Errors(t *testing.T) {
	l := New(&dyndb.MockDynamoClient{}, "runs")
	_, err := l.Record(context.Background(), RunRecord{JobName: "nightly"})
	assert.Error(t, err)

	failing := New(&dyndb.MockDynamoClient{
		PutItemFn: func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("network")
		},
	}, "runs")
	_, err = failing.Record(context.Background(), FromJobRun(sampleRun(), SourcePoll, observed))
	assert.ErrorContains(t, err, "ledger: put failed")
}

func TestGet(t *testing.T) {
	item, err := attributevalue.MarshalMap(FromJobRun(sampleRun(), SourcePoll, observed))
	require.NoError(t, err)

	mock := &dyndb.MockDynamoClient{
		GetItemFn: func(_ context.Context, in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			key := in.Key["run_id"].(*types.AttributeValueMemberS)
			if key.Value != "jr_1" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}
	l := New(mock, "runs")

	rec, err := l.Get(context.Background(), "nightly", "jr_1")
	require.NoError(t, err)
	assert.Equal(t, model.JobRunStateFailed, rec.State)
	assert.True(t, rec.ObservedAt.Equal(observed))

	_, err = l.Get(context.Background(), "nightly", "jr_9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistory_Pagination(t *testing.T) {
	items := make([]map[string]types.AttributeValue, 0, 3)
	for _, id := range []string{"jr_3", "jr_2", "jr_1"} {
		rec := RunRecord{JobName: "nightly", RunID: id, State: model.JobRunStateSucceeded, Source: SourcePoll, ObservedAt: observed}
		av, err := attributevalue.MarshalMap(rec)
		require.NoError(t, err)
		items = append(items, av)
	}

	var starts []map[string]types.AttributeValue
	mock := &dyndb.MockDynamoClient{
		QueryFn: func(_ context.Context, in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			starts = append(starts, in.ExclusiveStartKey)
			assert.False(t, aws.ToBool(in.ScanIndexForward))
			if in.ExclusiveStartKey == nil {
				return &dynamodb.QueryOutput{
					Items: items[:2],
					LastEvaluatedKey: map[string]types.AttributeValue{
						"job_name": &types.AttributeValueMemberS{Value: "nightly"},
						"run_id":   &types.AttributeValueMemberS{Value: "jr_2"},
					},
				}, nil
			}
			return &dynamodb.QueryOutput{Items: items[2:]}, nil
		},
	}
	l := New(mock, "runs")

	page, token, err := l.History(context.Background(), "nightly", 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "jr_3", page[0].RunID)
	require.NotEmpty(t, token)

	page, token, err = l.History(context.Background(), "nightly", 2, token)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "jr_1", page[0].RunID)
	assert.Empty(t, token)

	require.Len(t, starts, 2)
	runID := starts[1]["run_id"].(*types.AttributeValueMemberS)
	assert.Equal(t, "jr_2", runID.Value)
}

func TestHistory_InvalidToken(t *testing.T) {
	l := New(&dyndb.MockDynamoClient{}, "runs")

	_, _, err := l.History(context.Background(), "nightly", 10, "%%%")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = l.History(context.Background(), "nightly", 10, "e30=") // {}
	assert.ErrorIs(t, err, ErrInvalidToken)
}
