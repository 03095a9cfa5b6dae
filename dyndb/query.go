package dyndb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Query inicia uma Query aplicando os filtros informados.
func (s *dynamoStore[T]) Query(filters ...QueryFilter[T]) *QueryBuilder[T] {
	qb := &QueryBuilder[T]{
		store:       s,
		scanForward: aws.Bool(true),
	}
	for _, f := range filters {
		f(qb)
	}
	return qb
}

// === MÉTODOS FLUENTES ===

func (qb *QueryBuilder[T]) Index(name string) *QueryBuilder[T] {
	qb.indexName = aws.String(name)
	return qb
}

func (qb *QueryBuilder[T]) KeyEqual(key string, value any) *QueryBuilder[T] {
	return qb.withKey(expression.KeyEqual(expression.Key(key), expression.Value(value)))
}

func (qb *QueryBuilder[T]) FilterEqual(field string, value any) *QueryBuilder[T] {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

// Limit ignora valores <= 0 (sem limite).
func (qb *QueryBuilder[T]) Limit(n int32) *QueryBuilder[T] {
	if n > 0 {
		qb.limit = &n
	}
	return qb
}

// LastKey continua a partir do token devolvido por um Exec anterior.
// Um token ilegível faz o Exec falhar com ErrInvalidToken.
func (qb *QueryBuilder[T]) LastKey(token string) *QueryBuilder[T] {
	qb.lastKey, qb.tokenErr = DecodeToken(token)
	return qb
}

func (qb *QueryBuilder[T]) withKey(cond expression.KeyConditionBuilder) *QueryBuilder[T] {
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

// Filtros aplicados na criação do builder

func WithKeyCondition[T any](cond expression.KeyConditionBuilder) QueryFilter[T] {
	return func(qb *QueryBuilder[T]) { qb.withKey(cond) }
}

func WithIndex[T any](name string) QueryFilter[T] {
	return func(qb *QueryBuilder[T]) { qb.Index(name) }
}

func WithLimit[T any](n int32) QueryFilter[T] {
	return func(qb *QueryBuilder[T]) { qb.Limit(n) }
}

func WithLastEvaluatedKey[T any](token string) QueryFilter[T] {
	return func(qb *QueryBuilder[T]) { qb.LastKey(token) }
}

func WithScanForward[T any](forward bool) QueryFilter[T] {
	return func(qb *QueryBuilder[T]) { qb.scanForward = &forward }
}

// Exec executa a consulta e devolve a página e o token da próxima ("" no fim).
func (qb *QueryBuilder[T]) Exec(ctx context.Context) ([]T, string, error) {
	if qb.tokenErr != nil {
		return nil, "", qb.tokenErr
	}
	if qb.keyCond == nil {
		return nil, "", errors.New("dyndb: query requires a key condition")
	}

	builder := expression.NewBuilder().WithKeyCondition(*qb.keyCond)
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, "", fmt.Errorf("dyndb: build expression failed: %w", err)
	}

	out, err := qb.store.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ScanIndexForward:          qb.scanForward,
		ExclusiveStartKey:         qb.lastKey,
	})
	if err != nil {
		return nil, "", fmt.Errorf("dyndb: query failed: %w", err)
	}
	return qb.unmarshal(out.Items, out.LastEvaluatedKey)
}

func (qb *QueryBuilder[T]) unmarshal(items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue) ([]T, string, error) {
	result := make([]T, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &result); err != nil {
		return nil, "", fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}

	token, err := EncodeToken(lastKey)
	if err != nil {
		return nil, "", err
	}
	return result, token, nil
}
