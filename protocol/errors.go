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

package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/smithy-go"

	"github.com/raywall/glue-catalog-toolkit/model"
)

var (
	// ErrInvalidRequest indica que o request não passou na validação das tags.
	ErrInvalidRequest = errors.New("protocol: invalid request")

	// ErrMalformedBody indica um corpo que não é JSON válido para o tipo
	// esperado (sintaxe, tipo de campo, timestamp).
	ErrMalformedBody = errors.New("protocol: malformed body")
)

// FieldError localiza uma falha de decodificação de enum dentro do corpo.
type FieldError struct {
	Path  string // caminho JSON, ex: JobRun.JobRunState
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("protocol: field %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsSchemaSkew informa se o erro vem de um valor de enum desconhecido, ou
// seja, o serviço está à frente do vocabulário compilado neste binário.
func IsSchemaSkew(err error) bool {
	return errors.Is(err, model.ErrUnknownValue)
}

// ValidationError agrega as violações encontradas em um request.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v:\n- %s", ErrInvalidRequest, strings.Join(e.Violations, "\n- "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// ServiceError é um erro devolvido pelo próprio serviço. Implementa
// smithy.APIError, então pode ser tratado como os erros do SDK.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

var _ smithy.APIError = (*ServiceError)(nil)

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("glue: %s (status %d)", e.Code, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += ", request id " + e.RequestID
	}
	return msg
}

func (e *ServiceError) ErrorCode() string    { return e.Code }
func (e *ServiceError) ErrorMessage() string { return e.Message }
func (e *ServiceError) HTTPStatusCode() int  { return e.StatusCode }

func (e *ServiceError) ErrorFault() smithy.ErrorFault {
	switch {
	case e.StatusCode >= 500:
		return smithy.FaultServer
	case e.StatusCode >= 400:
		return smithy.FaultClient
	}
	return smithy.FaultUnknown
}

// Throttling informa se o código é de limitação de taxa.
func (e *ServiceError) Throttling() bool {
	_, ok := retry.DefaultThrottleErrorCodes[e.Code]
	return ok
}

// NotFound informa se a entidade pedida não existe.
func (e *ServiceError) NotFound() bool {
	return e.Code == "EntityNotFoundException"
}

type errorBody struct {
	Type         string `json:"__type"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// DecodeServiceError monta o ServiceError a partir de uma resposta HTTP de
// erro. O código vem de __type ou, na falta dele, do header X-Amzn-ErrorType.
func DecodeServiceError(status int, header http.Header, body []byte) *ServiceError {
	svcErr := &ServiceError{
		StatusCode: status,
		RequestID:  header.Get("X-Amzn-RequestId"),
	}

	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		svcErr.Code = sanitizeCode(eb.Type)
		svcErr.Message = eb.Message
		if svcErr.Message == "" {
			svcErr.Message = eb.MessageUpper
		}
	}
	if svcErr.Code == "" {
		svcErr.Code = sanitizeCode(header.Get("X-Amzn-ErrorType"))
	}
	if svcErr.Code == "" {
		svcErr.Code = http.StatusText(status)
	}
	return svcErr
}

// sanitizeCode remove o namespace (antes de #) e a URI (depois de :).
func sanitizeCode(code string) string {
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	return strings.TrimSpace(code)
}
