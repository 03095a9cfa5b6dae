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

// Package record implementa o contrato de value object usado pelos modelos
// do catálogo: igualdade estrutural, hash consistente com a igualdade,
// renderização determinística e cópia profunda.
//
// Visão Geral:
// Um record é uma struct cujos campos exportados são, cada um, "presentes"
// ou "ausentes". O pacote trata como ausente:
//   - ponteiro nil (ex: *string, *int32, *Database);
//   - slice ou map nil (um slice vazio, mas não-nil, está presente);
//   - string tipada vazia (enumerações; "" nunca é um valor de wire válido).
//
// Regras:
//   - Equal: mesmo tipo declarado; ausente == ausente; ausente != presente;
//     valores presentes comparados recursivamente.
//   - Hash: acumulador iniciado em 1, multiplicado por 31 a cada campo, na
//     ordem de declaração; campo ausente contribui 0.
//   - String: "{Campo: valor,Outro: valor}" apenas com campos presentes,
//     na ordem de declaração. Um record vazio renderiza "{}".
//
// Exemplo de Uso:
//
//	type Target struct {
//		Path *string
//	}
//
//	func (t *Target) Equal(o *Target) bool { return record.Equal(t, o) }
//	func (t *Target) Hash() int32          { return record.Hash(t) }
//	func (t *Target) String() string       { return record.String(t) }
//
// O pacote não faz validação entre campos: restrições de tamanho ou padrão
// pertencem ao codec de wire (pacote protocol).
package record
