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
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp é um instante no formato de wire do protocolo JSON da AWS:
// segundos desde a época Unix, com fração opcional.
type Timestamp struct {
	time.Time
}

// NewTimestamp cria um Timestamp a partir de um time.Time.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// String renderiza o instante em RFC3339 (UTC).
func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}

// MarshalJSON codifica como segundos da época, com a fração exata até o
// nanossegundo e sem zeros à direita.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	neg := sec < 0
	if neg {
		sec = -sec
		if nsec > 0 {
			sec--
			nsec = int64(time.Second) - nsec
		}
	}

	out := strconv.FormatInt(sec, 10)
	if nsec > 0 {
		out += "." + strings.TrimRight(fmt.Sprintf("%09d", nsec), "0")
	}
	if neg {
		out = "-" + out
	}
	return []byte(out), nil
}

// UnmarshalJSON aceita segundos da época (número) ou uma string RFC3339.
// null mantém o campo ausente.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("model: invalid timestamp %s: %w", data, err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("model: invalid timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	parsed, err := parseEpoch(string(data))
	if err != nil {
		return fmt.Errorf("model: invalid timestamp %s: %w", data, err)
	}
	t.Time = parsed
	return nil
}

// parseEpoch lê a parte inteira e a fração em decimal, sem passar por
// float64, para preservar até o nanossegundo. Notação com expoente cai no
// caminho de ponto flutuante.
func parseEpoch(s string) (time.Time, error) {
	if strings.ContainsAny(s, "eE") {
		secs, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, err
		}
		whole, frac := math.Modf(secs)
		return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC(), nil
	}

	neg := strings.HasPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")

	sec, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		nsec, err = strconv.ParseInt(fracPart+strings.Repeat("0", 9-len(fracPart)), 10, 64)
		if err != nil || nsec < 0 {
			return time.Time{}, fmt.Errorf("invalid fraction %q", fracPart)
		}
	}
	if neg {
		sec, nsec = -sec, -nsec
	}
	return time.Unix(sec, nsec).UTC(), nil
}
