package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightsource/catalog/internal/platform/config"
)

func newTestRouter(t *testing.T) http.Handler {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", CORSOrigin: "*"}
	return NewRouter(ctx, cfg, discardLogger(), Handlers{Health: newHealth(healthy, healthy)})
}

func TestRouter_UnknownRouteUsesEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "NOT_FOUND", envelope["code"])
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRouter_Probes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready", "/db-status"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}
