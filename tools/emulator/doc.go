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
//
// Package emulator fornece um endpoint local do AWS Glue, configurável via
// JSON, para desenvolvimento e testes de integração sem depender da conta.
//
// O emulador fala o protocolo AWS JSON 1.1: todas as chamadas são POST em "/"
// e a operação vem do header X-Amz-Target (ex: AWSGlue.GetJobRun). Cada rota
// declara a operação e como responder:
//
//   - match: campos que o request precisa conter para a rota valer. Rotas da
//     mesma operação são avaliadas na ordem do arquivo.
//   - response: resposta estática.
//   - data + keys: dataset em memória filtrado pelos campos do request; wrap
//     embrulha o item encontrado (ex: {"JobRun": {...}}).
//   - response_on_no_match: resposta quando nenhum item casa. O padrão é
//     EntityNotFoundException com status 400.
//
// Exemplo de configuração:
//
//	[
//	  {
//	    "port": 4566,
//	    "routes": [
//	      {
//	        "operation": "GetJobRun",
//	        "keys": [
//	          { "name": "JobName", "maps_to": "JobName" },
//	          { "name": "RunId", "maps_to": "Id" }
//	        ],
//	        "wrap": "JobRun",
//	        "data": [
//	          { "Id": "jr_1", "JobName": "etl", "JobRunState": "SUCCEEDED" }
//	        ]
//	      }
//	    ]
//	  }
//	]
//
// Operações sem rota respondem UnknownOperationException. Para subir o
// emulador use cmd/emulator; nos testes, ServerConfig.Router pode ser
// servido com httptest.
package emulator
