// Package dyndb fornece um store genérico e tipado sobre o DynamoDB do
// AWS SDK Go v2.
//
// Visão Geral:
// O pacote oferece a interface `Store[T]`, que esconde os AttributeValue do
// SDK atrás de tipos Go com tags `dynamodbav`. O `QueryBuilder[T]` monta as
// consultas de forma fluente sobre o expression builder do SDK.
//
// Funcionalidades Principais:
//   - Get e Put tipados, com Put condicional (`WithCondition`).
//   - TTL automático quando a tabela declara o atributo de expiração.
//   - Query fluente com índice, filtro, ordem e limite.
//   - Paginação por tokens Base64 que preservam o tipo das chaves (S, N, B).
//   - `MockDynamoClient` com campos de função para testes.
//
// Exemplo de Uso:
//
//	type Run struct {
//		Job   string `dynamodbav:"job_name"`
//		RunID string `dynamodbav:"run_id"`
//		State string `dynamodbav:"state"`
//	}
//
//	runs := dyndb.New(dynamodb.NewFromConfig(cfg), dyndb.TableConfig[Run]{
//		TableName: "glue-runs",
//		HashKey:   "job_name",
//		SortKey:   "run_id",
//	})
//
//	page, token, err := runs.Query(dyndb.WithScanForward[Run](false)).
//		KeyEqual("job_name", "nightly").
//		Limit(20).
//		Exec(ctx)
//
// Configuração:
// Quando `TableName` não é informado, a configuração da tabela é lida das
// variáveis de ambiente declaradas nas tags `env` de `TableConfig`.
package dyndb
