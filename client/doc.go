// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client é um cliente HTTP para a API do AWS Glue usando o
// protocolo AWS JSON 1.1.
//
// Assinatura SigV4, credenciais e região vêm do aws.Config do SDK v2; o
// pacote cuida apenas de montar a chamada, aplicar retentativas em erros
// transitórios e decodificar a resposta com o pacote protocol.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	glue := client.New(cfg, client.WithLogger(log.Logger))
//
//	out, err := glue.GetJobRun(ctx, (&model.GetJobRunRequest{}).
//		WithJobName("etl").
//		WithRunId("jr_1"))
//
// Erros do serviço chegam como *protocol.ServiceError. Valores de enum que o
// binário não conhece chegam como *protocol.FieldError e nunca são
// retentados.
package client
