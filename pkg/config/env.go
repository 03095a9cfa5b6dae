package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// ApplyDefaults preenche os campos com a tag "envDefault". Deve rodar antes
// do arquivo, para que um valor zero declarado no YAML prevaleça.
func ApplyDefaults(target interface{}) error {
	return apply(target, func(f reflect.StructField) (string, string) {
		return f.Tag.Get("envDefault"), f.Tag.Get("env")
	})
}

// ApplyEnv sobrescreve os campos da struct com as variáveis de ambiente
// indicadas pelas tags "env". Variáveis ausentes ou vazias não alteram o
// campo.
func ApplyEnv(target interface{}) error {
	return apply(target, func(f reflect.StructField) (string, string) {
		name := f.Tag.Get("env")
		if name == "" {
			return "", ""
		}
		return os.Getenv(name), name
	})
}

// source devolve o valor a aplicar no campo ("" para não alterar) e o nome
// da variável, usado nos erros.
type source func(reflect.StructField) (value, envVar string)

func apply(target interface{}, src source) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidTargetError{Value: val.Type()}
	}
	return applyStruct(val.Elem(), src)
}

func applyStruct(val reflect.Value, src source) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyStruct(field, src); err != nil {
				return err
			}
			continue
		}

		value, envVar := src(fieldType)
		if value == "" {
			continue
		}

		if err := setFieldValue(field, value); err != nil {
			return &EnvFieldError{
				FieldName: fieldType.Name,
				EnvVar:    envVar,
				Value:     value,
				Err:       err,
			}
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}
