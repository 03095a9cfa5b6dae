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

import "slices"

// vocabulary é o mapeamento fechado entre constantes e valores de wire de
// uma enumeração. É montado uma única vez na inicialização do pacote.
type vocabulary[E ~string] struct {
	name    string
	members []E
	index   map[string]E
}

func newVocabulary[E ~string](name string, members ...E) vocabulary[E] {
	index := make(map[string]E, len(members))
	for _, m := range members {
		if m == "" {
			panic("model: empty member in vocabulary " + name)
		}
		if _, dup := index[string(m)]; dup {
			panic("model: duplicated member " + string(m) + " in vocabulary " + name)
		}
		index[string(m)] = m
	}
	return vocabulary[E]{name: name, members: members, index: index}
}

// parse faz a correspondência exata (sensível a maiúsculas).
func (v vocabulary[E]) parse(wire string) (E, error) {
	if wire == "" {
		return "", &EnumError{Enum: v.name, Err: ErrInvalidValue}
	}
	if m, ok := v.index[wire]; ok {
		return m, nil
	}
	return "", &EnumError{Enum: v.name, Value: wire, Err: ErrUnknownValue}
}

func (v vocabulary[E]) unmarshal(dst *E, text []byte) error {
	m, err := v.parse(string(text))
	if err != nil {
		return err
	}
	*dst = m
	return nil
}

func (v vocabulary[E]) values() []E {
	return slices.Clone(v.members)
}

func (v vocabulary[E]) contains(m E) bool {
	_, ok := v.index[string(m)]
	return ok
}
