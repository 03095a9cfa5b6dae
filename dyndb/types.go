package dyndb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	// ErrNotFound – erro padrão quando o item não existe
	ErrNotFound = errors.New("dyndb: item not found")

	// ErrConditionFailed indica que a condição do Put não foi satisfeita.
	ErrConditionFailed = errors.New("dyndb: condition failed")

	// ErrInvalidToken indica um token de paginação ilegível.
	ErrInvalidToken = errors.New("dyndb: invalid pagination token")
)

// DynamoDBClient interface para abstrair o cliente DynamoDB
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store — interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T, opts ...PutOption) error
	Query(filters ...QueryFilter[T]) *QueryBuilder[T]
}

// TableConfig — configuração da tabela
type TableConfig[T any] struct {
	TableName    string        `env:"DYNAMODB_TABLE_NAME"`
	HashKey      string        `env:"DYNAMODB_HASH_KEY"`
	SortKey      string        `env:"DYNAMODB_SORT_KEY"`      // opcional
	TTLAttribute string        `env:"DYNAMODB_TTL_ATTRIBUTE"` // opcional
	TTL          time.Duration `env:"DYNAMODB_TTL"`           // usado com TTLAttribute
}

// PutOption ajusta uma escrita.
type PutOption func(*putOptions)

type putOptions struct {
	condition *expression.ConditionBuilder
}

// WithCondition só grava o item quando a condição é verdadeira no item
// atual. Caso contrário Put devolve ErrConditionFailed.
func WithCondition(cond expression.ConditionBuilder) PutOption {
	return func(o *putOptions) { o.condition = &cond }
}

// QueryFilter — opção aplicada ao QueryBuilder na criação
type QueryFilter[T any] func(*QueryBuilder[T])

// QueryBuilder — o builder fluente
type QueryBuilder[T any] struct {
	store       *dynamoStore[T]
	keyCond     *expression.KeyConditionBuilder
	filterCond  *expression.ConditionBuilder
	indexName   *string
	limit       *int32
	lastKey     map[string]types.AttributeValue
	tokenErr    error
	scanForward *bool
}
