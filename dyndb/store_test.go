package dyndb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testItem é uma estrutura com chave de ordenação numérica
type testItem struct {
	PK      string `dynamodbav:"pk"`
	SK      int64  `dynamodbav:"sk"`
	Data    string `dynamodbav:"data"`
	Expires int64  `dynamodbav:"expires,omitempty"`
}

var testConfig = TableConfig[testItem]{
	TableName:    "test-table",
	HashKey:      "pk",
	SortKey:      "sk",
	TTLAttribute: "expires",
	TTL:          time.Hour,
}

func createTestStore(client DynamoDBClient) *dynamoStore[testItem] {
	s := New(client, testConfig).(*dynamoStore[testItem])
	s.now = func() time.Time { return time.Unix(1000, 0) }
	return s
}

func TestGet_Success(t *testing.T) {
	mockClient := &MockDynamoClient{
		GetItemFn: func(_ context.Context, in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-table", aws.ToString(in.TableName))
			assert.True(t, aws.ToBool(in.ConsistentRead))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, in.Key["pk"])
			assert.Equal(t, &types.AttributeValueMemberN{Value: "7"}, in.Key["sk"])
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"pk":   &types.AttributeValueMemberS{Value: "a"},
				"sk":   &types.AttributeValueMemberN{Value: "7"},
				"data": &types.AttributeValueMemberS{Value: "x"},
			}}, nil
		},
	}
	store := createTestStore(mockClient)

	item, err := store.Get(context.Background(), "a", 7)
	require.NoError(t, err)
	assert.Equal(t, "x", item.Data)
}

func TestGet_NotFound(t *testing.T) {
	store := createTestStore(&MockDynamoClient{})

	_, err := store.Get(context.Background(), "a", 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut_FillsTTL(t *testing.T) {
	var captured *dynamodb.PutItemInput
	store := createTestStore(&MockDynamoClient{
		PutItemFn: func(_ context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return &dynamodb.PutItemOutput{}, nil
		},
	})

	require.NoError(t, store.Put(context.Background(), testItem{PK: "a", SK: 1}))
	assert.Nil(t, captured.ConditionExpression)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "4600"}, captured.Item["expires"])

	// o item que já traz a expiração não é alterado
	require.NoError(t, store.Put(context.Background(), testItem{PK: "a", SK: 1, Expires: 42}))
	assert.Equal(t, &types.AttributeValueMemberN{Value: "42"}, captured.Item["expires"])
}

func TestPut_Condition(t *testing.T) {
	var captured *dynamodb.PutItemInput
	store := createTestStore(&MockDynamoClient{
		PutItemFn: func(_ context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("stale")}
		},
	})

	err := store.Put(context.Background(), testItem{PK: "a", SK: 1},
		WithCondition(expression.AttributeNotExists(expression.Name("sk"))))
	assert.ErrorIs(t, err, ErrConditionFailed)
	require.NotNil(t, captured.ConditionExpression)
	assert.Contains(t, *captured.ConditionExpression, "attribute_not_exists")
}

func TestPut_Error(t *testing.T) {
	store := createTestStore(&MockDynamoClient{
		PutItemFn: func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("network")
		},
	})

	err := store.Put(context.Background(), testItem{PK: "a"})
	assert.ErrorContains(t, err, "dyndb: put failed: network")
	assert.NotErrorIs(t, err, ErrConditionFailed)
}

func TestNew_TableFromEnv(t *testing.T) {
	t.Setenv("DYNAMODB_TABLE_NAME", "from-env")
	t.Setenv("DYNAMODB_HASH_KEY", "pk")

	s := New(&MockDynamoClient{}, TableConfig[testItem]{}).(*dynamoStore[testItem])
	assert.Equal(t, "from-env", s.cfg.TableName)
	assert.Equal(t, "pk", s.cfg.HashKey)
}

func TestQuery_Pagination(t *testing.T) {
	items := make([]map[string]types.AttributeValue, 0, 3)
	for _, sk := range []int64{3, 2, 1} {
		av, err := attributevalue.MarshalMap(testItem{PK: "a", SK: sk})
		require.NoError(t, err)
		items = append(items, av)
	}

	var starts []map[string]types.AttributeValue
	store := createTestStore(&MockDynamoClient{
		QueryFn: func(_ context.Context, in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			starts = append(starts, in.ExclusiveStartKey)
			assert.False(t, aws.ToBool(in.ScanIndexForward))
			assert.Equal(t, int32(2), aws.ToInt32(in.Limit))
			if in.ExclusiveStartKey == nil {
				return &dynamodb.QueryOutput{
					Items:            items[:2],
					LastEvaluatedKey: map[string]types.AttributeValue{"pk": items[1]["pk"], "sk": items[1]["sk"]},
				}, nil
			}
			return &dynamodb.QueryOutput{Items: items[2:]}, nil
		},
	})

	page, token, err := store.Query(WithScanForward[testItem](false)).KeyEqual("pk", "a").Limit(2).Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].SK)
	require.NotEmpty(t, token)

	page, token, err = store.Query(
		WithScanForward[testItem](false),
		WithLastEvaluatedKey[testItem](token),
		WithLimit[testItem](2),
	).KeyEqual("pk", "a").Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Empty(t, token)

	// a chave numérica volta como N, não como string
	require.Len(t, starts, 2)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, starts[1]["sk"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, starts[1]["pk"])
}

func TestQuery_Errors(t *testing.T) {
	store := createTestStore(&MockDynamoClient{
		QueryFn: func(context.Context, *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return nil, errors.New("throttled")
		},
	})

	_, _, err := store.Query().Exec(context.Background())
	assert.ErrorContains(t, err, "key condition")

	_, _, err = store.Query().KeyEqual("pk", "a").LastKey("%%%").Exec(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = store.Query().KeyEqual("pk", "a").Exec(context.Background())
	assert.ErrorContains(t, err, "dyndb: query failed: throttled")
}

func TestToken_RoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"s": &types.AttributeValueMemberS{Value: "x"},
		"n": &types.AttributeValueMemberN{Value: "12345678901234567890"},
		"b": &types.AttributeValueMemberB{Value: []byte{0, 1, 2}},
	}

	token, err := EncodeToken(key)
	require.NoError(t, err)

	back, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, key, back)

	empty, err := EncodeToken(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = EncodeToken(map[string]types.AttributeValue{"l": &types.AttributeValueMemberL{}})
	assert.Error(t, err)
}

func TestDecodeToken_Invalid(t *testing.T) {
	for _, token := range []string{"%%%", "e30=", "eyJzIjp7fX0="} { // "{}", {"s":{}}
		_, err := DecodeToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}
