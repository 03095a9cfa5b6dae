package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/raywall/glue-catalog-toolkit/protocol"
	"github.com/raywall/glue-catalog-toolkit/tools/emulator/types"
	"github.com/rs/zerolog/log"
)

// RouteConfig descreve a resposta de uma operação do Glue
type RouteConfig struct {
	Operation         string                 `json:"operation"`
	Match             map[string]interface{} `json:"match,omitempty"`    // campos exigidos no request
	Response          *types.Response        `json:"response,omitempty"` // Para respostas estáticas
	Data              []interface{}          `json:"data,omitempty"`     // Para dados dinâmicos
	Keys              []types.ParamMapping   `json:"keys,omitempty"`
	Wrap              string                 `json:"wrap,omitempty"` // ex: "JobRun" devolve {"JobRun": item}
	ResponseOnMatch   *types.Response        `json:"response_on_match,omitempty"`
	ResponseOnNoMatch *types.Response        `json:"response_on_no_match,omitempty"`
}

// Matches informa se o request satisfaz os campos exigidos pela rota.
func (r RouteConfig) Matches(req map[string]interface{}) bool {
	for field, want := range r.Match {
		got, ok := req[field]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// NewHandler atende todas as rotas de uma mesma operação, na ordem declarada.
// A primeira rota cujo Match aceita o request responde.
func NewHandler(routes []RouteConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			sendResponse(w, types.ServiceError(400, "SerializationException", err.Error()))
			return
		}

		req := map[string]interface{}{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				sendResponse(w, types.ServiceError(400, "SerializationException", "corpo não é JSON"))
				return
			}
		}

		for _, route := range routes {
			if route.Matches(req) {
				sendResponse(w, route.respond(req))
				return
			}
		}
		sendResponse(w, types.ServiceError(400, "EntityNotFoundException", "nenhuma rota corresponde ao request"))
	}
}

func (r RouteConfig) respond(req map[string]interface{}) *types.Response {
	// Se for resposta estática (sem data/keys)
	if r.Response != nil && len(r.Data) == 0 {
		return r.Response
	}

	var matches []interface{}
	for _, item := range r.Data {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		match := true
		for _, key := range r.Keys {
			want, present := req[key.Name]
			if !present || !valuesEqual(itemMap[key.MapsTo], want) {
				match = false
				break
			}
		}
		if match {
			matches = append(matches, item)
		}
	}

	if len(matches) == 0 {
		if r.ResponseOnNoMatch != nil {
			return r.ResponseOnNoMatch
		}
		return types.ServiceError(400, "EntityNotFoundException", "entidade não encontrada")
	}

	status := http.StatusOK
	if r.ResponseOnMatch != nil && r.ResponseOnMatch.Status != 0 {
		status = r.ResponseOnMatch.Status
	}

	var body interface{} = matches
	if len(matches) == 1 {
		body = matches[0]
	}
	if r.Wrap != "" {
		body = map[string]interface{}{r.Wrap: body}
	}
	return &types.Response{Status: status, Body: body}
}

func sendResponse(w http.ResponseWriter, resp *types.Response) {
	w.Header().Set("Content-Type", protocol.ContentType)
	w.Header().Set("X-Amzn-RequestId", uuid.NewString())
	// status omitido na rota vale 200
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if resp.Body != nil {
		if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
			log.Error().Err(err).Msg("erro ao codificar resposta")
		}
	}
}

// valuesEqual compara um valor vindo do JSON com o esperado pela rota.
func valuesEqual(a, b interface{}) bool {
	switch v := a.(type) {
	case string:
		return v == fmt.Sprintf("%v", b)
	case float64:
		switch w := b.(type) {
		case float64:
			return v == w
		case string:
			f, err := strconv.ParseFloat(w, 64)
			return err == nil && v == f
		}
	case bool:
		return strings.EqualFold(fmt.Sprintf("%v", b), strconv.FormatBool(v))
	case []interface{}:
		w, ok := b.([]interface{})
		if !ok || len(v) != len(w) {
			return false
		}
		for i := range v {
			if !valuesEqual(v[i], w[i]) {
				return false
			}
		}
		return true
	}
	return false
}
