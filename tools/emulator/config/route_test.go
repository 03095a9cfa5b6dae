package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/tools/emulator/types"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	var cfg Config
	require.NoError(t, cfg.LoadFromFile(filepath.Join("..", "testdata", "glue.json")))
	return cfg[0].Router()
}

func call(h http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("X-Amz-Target", target)
	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestRouter(t *testing.T) {
	h := newRouter(t)

	t.Run("Dados filtrados pela chave", func(t *testing.T) {
		rr := call(h, "AWSGlue.GetDatabase", `{"Name":"sales"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/x-amz-json-1.1", rr.Header().Get("Content-Type"))
		assert.NotEmpty(t, rr.Header().Get("X-Amzn-RequestId"))

		body := decode(t, rr)
		db := body["Database"].(map[string]interface{})
		assert.Equal(t, "sales", db["Name"])
	})

	t.Run("Sem correspondência usa response_on_no_match", func(t *testing.T) {
		rr := call(h, "AWSGlue.GetDatabase", `{"Name":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "com.amazonaws.glue#EntityNotFoundException", decode(t, rr)["__type"])
	})

	t.Run("Match escolhe a rota", func(t *testing.T) {
		rr := call(h, "AWSGlue.GetJobRun", `{"JobName":"etl","RunId":"jr_skew"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "WAITING")

		rr = call(h, "AWSGlue.GetJobRun", `{"JobName":"etl","RunId":"jr_2"}`)
		assert.Contains(t, rr.Body.String(), "OutOfMemory")
	})

	t.Run("Chave ausente no request não casa", func(t *testing.T) {
		rr := call(h, "AWSGlue.GetJobRun", `{"JobName":"etl"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "EntityNotFoundException", decode(t, rr)["__type"])
	})

	t.Run("Operação não emulada", func(t *testing.T) {
		rr := call(h, "AWSGlue.DeleteDatabase", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "UnknownOperationException", decode(t, rr)["__type"])
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		rr := call(h, "AWSGlue.GetDatabase", `{`)
		assert.Equal(t, "SerializationException", decode(t, rr)["__type"])
	})
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, valuesEqual("a", "a"))
	assert.True(t, valuesEqual(float64(2), "2"))
	assert.True(t, valuesEqual(float64(2), float64(2)))
	assert.True(t, valuesEqual(true, "TRUE"))
	assert.True(t, valuesEqual([]interface{}{"2024", "01"}, []interface{}{"2024", "01"}))
	assert.False(t, valuesEqual([]interface{}{"2024"}, []interface{}{"2024", "01"}))
	assert.False(t, valuesEqual(nil, "x"))
}

func TestRouter_StatusOmitted(t *testing.T) {
	var body interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"Database":{"Name":"raw"}}`), &body))

	srv := &ServerConfig{Routes: []RouteConfig{
		{Operation: "GetDatabase", Response: &types.Response{Body: body}},
		{
			Operation:       "GetJobRun",
			Data:            []interface{}{map[string]interface{}{"Id": "jr_1"}},
			Keys:            []types.ParamMapping{{Name: "RunId", MapsTo: "Id"}},
			Wrap:            "JobRun",
			ResponseOnMatch: &types.Response{},
		},
	}}
	h := srv.Router()

	rr := call(h, "AWSGlue.GetDatabase", `{"Name":"raw"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "raw")

	rr = call(h, "AWSGlue.GetJobRun", `{"JobName":"etl","RunId":"jr_1"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "jr_1")
}
