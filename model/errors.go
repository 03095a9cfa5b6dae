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

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue é retornado quando a decodificação de uma enumeração
	// recebe um valor vazio.
	ErrInvalidValue = errors.New("model: enum value cannot be empty")

	// ErrUnknownValue é retornado quando o valor de wire não pertence ao
	// vocabulário conhecido. Geralmente indica que o serviço é mais novo
	// que o cliente (schema skew), não que o payload está corrompido.
	ErrUnknownValue = errors.New("model: unknown enum value")
)

// EnumError descreve uma falha de decodificação de enumeração.
type EnumError struct {
	// Enum é o nome do vocabulário (ex: "JobRunState").
	Enum string
	// Value é o valor de wire recebido.
	Value string
	// Err é ErrInvalidValue ou ErrUnknownValue.
	Err error
}

// Error retorna uma mensagem com o vocabulário e o valor recebido.
//
// Exemplo de Retorno: `model: unknown enum value: JobRunState "PAUSED"`
func (e *EnumError) Error() string {
	if errors.Is(e.Err, ErrInvalidValue) {
		return fmt.Sprintf("%v: %s", e.Err, e.Enum)
	}
	return fmt.Sprintf("%v: %s %q", e.Err, e.Enum, e.Value)
}

// Unwrap permite errors.Is(err, ErrUnknownValue).
func (e *EnumError) Unwrap() error {
	return e.Err
}
