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
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	roleArnPattern     = regexp.MustCompile(`^arn:aws[a-zA-Z-]*:iam::\d{12}:role/.+`)
	glueVersionPattern = regexp.MustCompile(`^\w+\.\w+$`)

	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator devolve o validador compartilhado, com as regras específicas do
// Glue já registradas. Os nomes de campo reportados seguem as tags json.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("iam_role_arn", func(fl validator.FieldLevel) bool {
			return roleArnPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("glue_version", func(fl validator.FieldLevel) bool {
			return glueVersionPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}
