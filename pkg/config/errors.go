package config

import (
	"fmt"
	"reflect"
)

// InvalidTargetError é retornado quando ApplyEnv recebe algo que não é um
// ponteiro para struct.
type InvalidTargetError struct {
	Value reflect.Type
}

func (e *InvalidTargetError) Error() string {
	if e.Value == nil {
		return "config: target must be a pointer to struct, got nil"
	}
	if e.Value.Kind() != reflect.Ptr {
		return fmt.Sprintf("config: target must be a pointer to struct, got %s", e.Value.Kind())
	}
	return fmt.Sprintf("config: target must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
}

// EnvFieldError é retornado quando o valor de uma variável de ambiente não
// pode ser convertido para o tipo do campo.
type EnvFieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Err       error
}

func (e *EnvFieldError) Error() string {
	return fmt.Sprintf("config: error setting field %s from env %s=%s: %v",
		e.FieldName, e.EnvVar, e.Value, e.Err)
}

func (e *EnvFieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError indica um campo com tag env de tipo não suportado.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("config: unsupported type %s", e.Type)
}
