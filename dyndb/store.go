package dyndb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/glue-catalog-toolkit/pkg/config"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig[T]
	now    func() time.Time
}

// New cria um store reutilizável
func New[T any](client DynamoDBClient, cfg TableConfig[T]) Store[T] {
	if cfg.TableName == "" {
		_ = config.ApplyEnv(&cfg)
	}

	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Get item por chave primária
func (s *dynamoStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	key, err := s.key(hashKey, sortKey)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Put grava o item (upsert, ou condicional com WithCondition).
func (s *dynamoStore[T]) Put(ctx context.Context, item T, opts ...PutOption) error {
	var o putOptions
	for _, opt := range opts {
		opt(&o)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dyndb: marshal failed: %w", err)
	}

	// expiração automática quando o item não trouxe a sua
	if s.cfg.TTLAttribute != "" && s.cfg.TTL > 0 {
		if _, ok := av[s.cfg.TTLAttribute]; !ok {
			av[s.cfg.TTLAttribute] = &types.AttributeValueMemberN{
				Value: fmt.Sprint(s.now().Add(s.cfg.TTL).Unix()),
			}
		}
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	}
	if o.condition != nil {
		expr, err := expression.NewBuilder().WithCondition(*o.condition).Build()
		if err != nil {
			return fmt.Errorf("dyndb: build condition failed: %w", err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if _, err = s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", ErrConditionFailed, aws.ToString(ccf.Message))
		}
		return fmt.Errorf("dyndb: put failed: %w", err)
	}
	return nil
}

func (s *dynamoStore[T]) key(hashKey, sortKey any) (map[string]types.AttributeValue, error) {
	hk, err := attributevalue.Marshal(hashKey)
	if err != nil {
		return nil, fmt.Errorf("dyndb: invalid hash key: %w", err)
	}
	key := map[string]types.AttributeValue{s.cfg.HashKey: hk}

	if s.cfg.SortKey != "" && sortKey != nil {
		sk, err := attributevalue.Marshal(sortKey)
		if err != nil {
			return nil, fmt.Errorf("dyndb: invalid sort key: %w", err)
		}
		key[s.cfg.SortKey] = sk
	}
	return key, nil
}
