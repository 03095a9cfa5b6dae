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
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/raywall/glue-catalog-toolkit/model"
)

const (
	// ContentType do protocolo AWS JSON 1.1.
	ContentType = "application/x-amz-json-1.1"

	// TargetPrefix identifica o serviço no header X-Amz-Target.
	TargetPrefix = "AWSGlue"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Target devolve o valor do header X-Amz-Target para a operação.
func Target(op string) string {
	return TargetPrefix + "." + op
}

// Marshal valida e codifica um request. Campos ausentes não são emitidos.
// Um request nil vira o objeto vazio.
func Marshal(req any) ([]byte, error) {
	if rv := reflect.ValueOf(req); !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return []byte("{}"), nil
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	return Encode(req)
}

// Encode codifica um valor no formato de wire sem validar. Usado para
// results, que vêm do serviço e não carregam as regras de request.
func Encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode: %w", err)
	}
	return body, nil
}

// Validate aplica as tags validate do request.
func Validate(req any) error {
	rv := reflect.ValueOf(req)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := Validator().Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	violations := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, fmt.Sprintf("field '%s' failed on '%s'", fieldPath(e.Namespace()), e.Tag()))
	}
	return &ValidationError{Violations: violations}
}

// fieldPath remove o nome do tipo raiz do namespace do validador.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Unmarshal decodifica uma resposta em out. Campos ausentes no corpo
// continuam ausentes; null equivale a ausente.
func Unmarshal(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}

	err := json.Unmarshal(body, out)
	if err == nil {
		return nil
	}

	var enumErr *model.EnumError
	if !errors.As(err, &enumErr) {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	fe := &FieldError{Value: enumErr.Value, Err: err}
	var raw any
	if json.Unmarshal(body, &raw) == nil {
		if path, ok := locate(raw, reflect.TypeOf(out), "", enumErr); ok {
			fe.Path = path
		}
	}
	if fe.Path == "" {
		fe.Path = "?"
	}
	return fe
}

// locate percorre o JSON genérico junto com o tipo de destino até achar o
// campo de enum que carrega o valor rejeitado.
func locate(raw any, t reflect.Type, path string, enumErr *model.EnumError) (string, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() == reflect.String && t.Name() == enumErr.Enum && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if s, ok := raw.(string); ok && s == enumErr.Value {
			return path, true
		}
		return "", false
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return "", false
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			child, present := obj[name]
			if !present {
				continue
			}
			if p, ok := locate(child, f.Type, join(path, name), enumErr); ok {
				return p, true
			}
		}

	case reflect.Slice, reflect.Array:
		items, ok := raw.([]any)
		if !ok {
			return "", false
		}
		for i, item := range items {
			if p, ok := locate(item, t.Elem(), path+"["+strconv.Itoa(i)+"]", enumErr); ok {
				return p, true
			}
		}

	case reflect.Map:
		obj, ok := raw.(map[string]any)
		if !ok {
			return "", false
		}
		for k, item := range obj {
			if p, ok := locate(item, t.Elem(), join(path, k), enumErr); ok {
				return p, true
			}
		}
	}
	return "", false
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
