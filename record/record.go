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

package record

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// prime é o multiplicador do acumulador de hash.
const prime = 31

var (
	timeType     = reflect.TypeOf(time.Time{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Equal compara dois records campo a campo.
//
// Records de tipos declarados diferentes nunca são iguais, mesmo que os
// campos coincidam. Dois ponteiros nil do mesmo tipo são iguais.
func Equal(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	return equalValue(va, vb)
}

func equalValue(a, b reflect.Value) bool {
	if a.Type() == timeType {
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Elem().Type() != b.Elem().Type() {
			return false
		}
		return equalValue(a.Elem(), b.Elem())

	case reflect.Struct:
		t := a.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Slice:
		if a.IsNil() != b.IsNil() {
			return false
		}
		return equalElements(a, b)

	case reflect.Array:
		return equalElements(a, b)

	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !equalValue(iter.Value(), other) {
				return false
			}
		}
		return true

	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		// comparação por bits: NaN é igual a si mesmo
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	}

	if a.CanInterface() && b.CanInterface() {
		return a.Interface() == b.Interface()
	}
	return false
}

func equalElements(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !equalValue(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

// Hash calcula um hash consistente com Equal.
func Hash(v any) int32 {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0
	}
	return hashValue(rv)
}

func hashValue(v reflect.Value) int32 {
	if v.Type() == timeType {
		ms := v.Interface().(time.Time).UnixMilli()
		return int32(ms ^ int64(uint64(ms)>>32))
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())

	case reflect.Struct:
		h := int32(1)
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			h = prime*h + hashValue(v.Field(i))
		}
		return h

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return 0
		}
		h := int32(1)
		for i := 0; i < v.Len(); i++ {
			h = prime*h + hashValue(v.Index(i))
		}
		return h

	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		// soma é independente da ordem de iteração do map
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h

	case reflect.String:
		var h int32
		for _, r := range v.String() {
			h = prime*h + int32(r)
		}
		return h

	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		return int32(n ^ int64(uint64(n)>>32))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := v.Uint()
		return int32(n ^ n>>32)

	case reflect.Float32, reflect.Float64:
		bits := math.Float64bits(v.Float())
		return int32(bits ^ bits>>32)
	}
	return 0
}

// String renderiza o record listando apenas os campos presentes.
func String(v any) string {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "null"
	}
	if rv.Kind() != reflect.Struct {
		return formatValue(rv)
	}
	return renderStruct(rv)
}

func renderStruct(v reflect.Value) string {
	var sb strings.Builder
	sb.WriteByte('{')

	t := v.Type()
	first := true
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)
		if !field.IsExported() || absent(fv) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(field.Name)
		sb.WriteString(": ")
		sb.WriteString(formatValue(fv))
	}

	sb.WriteByte('}')
	return sb.String()
}

func formatValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "null"
		}
		v = v.Elem()
	}
	if v.Type() == timeType {
		return v.Interface().(time.Time).UTC().Format(time.RFC3339Nano)
	}
	if v.CanInterface() && v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.Struct:
		return renderStruct(v)

	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case reflect.Map:
		// chaves ordenadas para que a saída seja determinística
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, formatValue(iter.Key())+"="+formatValue(iter.Value()))
		}
		sort.Strings(entries)
		return "{" + strings.Join(entries, ", ") + "}"

	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	}

	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return ""
}

// absent indica se o campo não carrega valor.
func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

// Clone devolve uma cópia profunda do record. Útil para compartilhar um
// snapshot entre goroutines sem expor o original a mutações.
func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := reflect.New(reflect.TypeOf(v).Elem())
	copyValue(out.Elem(), reflect.ValueOf(v).Elem())
	return out.Interface().(*T)
}

func copyValue(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		p := reflect.New(src.Type().Elem())
		copyValue(p.Elem(), src.Elem())
		dst.Set(p)

	case reflect.Struct:
		// campos não exportados seguem por valor
		dst.Set(src)
		t := src.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				copyValue(dst.Field(i), src.Field(i))
			}
		}

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			copyValue(s.Index(i), src.Index(i))
		}
		dst.Set(s)

	case reflect.Map:
		if src.IsNil() {
			return
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			val := reflect.New(src.Type().Elem()).Elem()
			copyValue(val, iter.Value())
			m.SetMapIndex(iter.Key(), val)
		}
		dst.Set(m)

	default:
		dst.Set(src)
	}
}
