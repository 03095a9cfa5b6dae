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

// Package model contém as enumerações e os value objects da API de catálogo
// de dados e orquestração de ETL (AWS Glue).
//
// Visão Geral:
// O pacote expõe dois tipos de elemento:
//
//  1. Enumerações fechadas (JobRunState, CrawlState, UpdateBehavior, ...):
//     cada uma é um tipo string nomeado com uma constante por valor de wire.
//     A decodificação é estrita: string vazia gera ErrInvalidValue e uma
//     string desconhecida gera ErrUnknownValue (ver EnumError).
//
//  2. Value objects (Database, JobRun, DynamoDBTarget, ...): structs com
//     campos exportados independentes, cada um presente ou ausente. Campos
//     escalares são ponteiros (nil = ausente), slices e maps nil são
//     ausentes e enums "" são ausentes.
//
// Cada value object expõe SetX (sem retorno) e WithX (retorna o próprio
// receptor para encadeamento), além de Equal, Hash, String e Clone, que
// delegam ao pacote record.
//
// Exemplo de Uso:
//
//	target := (&model.DynamoDBTarget{}).WithPath("/my-table")
//	fmt.Println(target) // {Path: /my-table}
//
//	state, err := model.ParseJobRunState("SUCCEEDED")
//	if errors.Is(err, model.ErrUnknownValue) {
//		// o serviço é mais novo que este cliente
//	}
//
// Concorrência:
// Os value objects não são seguros para mutação concorrente. Para
// compartilhar um objeto entre goroutines, publique um Clone e não o altere.
package model
