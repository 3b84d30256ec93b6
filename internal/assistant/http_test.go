package assistant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(generator Generator) http.Handler {
	service, _, _ := newTestService(generator)
	router := chi.NewRouter()
	router.Route("/api/assistant", NewHandler(service).RegisterRoutes)
	return router
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestHandler_SendMessage(t *testing.T) {
	router := newTestRouter(&scriptedGenerator{answer: "Look at the packaging report"})

	request := httptest.NewRequest(http.MethodPost, "/api/assistant/messages", strings.NewReader(`{"message":"packaging"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := decode(t, recorder)["data"].(map[string]any)
	assert.NotEmpty(t, data["sessionId"])
	assert.Equal(t, "Look at the packaging report (packaging)", data["reply"])
}

func TestHandler_SendMessageWhenDisabled(t *testing.T) {
	router := newTestRouter(nil)

	request := httptest.NewRequest(http.MethodPost, "/api/assistant/messages", strings.NewReader(`{"message":"packaging"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decode(t, recorder)["code"])
}

func TestHandler_GetContext(t *testing.T) {
	router := newTestRouter(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/assistant/context", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	data := decode(t, recorder)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["reports"])
	assert.Contains(t, data["context"], "Global Flexible Packaging")
}
