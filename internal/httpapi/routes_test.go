package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/internal/httpapi"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	"github.com/owings1/pytableaux/pkg/service"
)

func newTestRouter() chi.Router {
	r := chi.NewMux()
	httpapi.Mount(r, service.New(nil))
	return r
}

func TestProveHandlerValidArgument(t *testing.T) {
	body, err := json.Marshal(service.ProveRequest{
		Logic: "CPL",
		Argument: service.ArgumentSpec{
			Conclusion: "a",
			Premises:   []string{"a"},
			Notation:   "standard",
		},
		Output: service.OutputSpec{Format: "text", Notation: "standard"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/prove", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp service.ProveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Valid)
}

func TestProveHandlerBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/prove", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
