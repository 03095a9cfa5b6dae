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

// Package protocol implementa o codec do protocolo AWS JSON 1.1 usado pela
// API do Glue.
//
// Marshal valida as tags `validate` do request antes de codificar, e
// Unmarshal decodifica a resposta mantendo a semântica de ausência dos
// records do pacote model. Falhas de decodificação de enum viram um
// *FieldError que aponta o caminho JSON do campo problemático:
//
//	var out model.GetJobRunResult
//	if err := protocol.Unmarshal(body, &out); err != nil {
//		if protocol.IsSchemaSkew(err) {
//			// o serviço devolveu um valor que esta versão não conhece
//		}
//	}
//
// Erros do serviço (status HTTP >= 300) seguem por outro canal, através de
// DecodeServiceError.
package protocol
