// Package gluecatalog fornece um conjunto de utilitários para consultar o
// AWS Glue Data Catalog e acompanhar execuções de jobs ETL em Go, com
// decodificação estrita dos vocabulários do serviço.
//
// Visão Geral:
// Este módulo é uma caixa de ferramentas para quem integra com o Glue sem
// depender de todo o SDK gerado, fornecendo soluções modulares para:
// 1. Modelo (model, record): enumerações fechadas e value objects do catálogo.
// 2. Protocolo (protocol, client): codec AWS JSON 1.1 e cliente assinado com SigV4.
// 3. Operação (pkg/...): cache Redis, ledger DynamoDB, eventos EventBridge e watcher.
//
// O design é focado na composabilidade e testabilidade, utilizando interfaces
// pequenas para os clientes AWS e mocks com campos de função.
//
// Sub-Pacotes Principais:
//
// 1. model:
//   - Enumerações (JobRunState, CrawlState, ...) com Parse estrito e erros tipados.
//   - Value objects com campos opcionais, SetX/WithX, Equal, Hash, String e Clone.
//
// 2. protocol e client:
//   - Validação dos requests (validator/v10) e codificação de wire.
//   - Erros de enum com o caminho do campo (schema skew vs payload inválido).
//   - Client com retry padrão do SDK, métricas e correlation id.
//
// 3. pkg:
//   - config: YAML, variáveis de ambiente, SSM e Secrets Manager.
//   - cache, ledger, events, watch, preflight, filter, metrics e logger.
//
// Exemplo de Início Rápido:
//
// Consulta de um database com o cliente apontando para o emulador local.
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		awsconfig "github.com/aws/aws-sdk-go-v2/config"
//		"github.com/raywall/glue-catalog-toolkit/client"
//		"github.com/raywall/glue-catalog-toolkit/model"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		// 1. Credenciais e região pela cadeia padrão da AWS
//		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-1"))
//		if err != nil {
//			log.Fatalf("Erro ao carregar AWS: %v", err)
//		}
//
//		// 2. Cliente apontando para o emulador (cmd/emulator)
//		glue := client.New(cfg, client.WithEndpoint("http://localhost:4566"))
//
//		// 3. Consulta
//		out, err := glue.GetDatabase(ctx, (&model.GetDatabaseRequest{}).WithName("sales"))
//		if err != nil {
//			log.Fatalf("Erro ao buscar database: %v", err)
//		}
//		fmt.Println(out.Database) // {Name: sales,Description: vendas,...}
//	}
package gluecatalog
