package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophtext/internal/crypto"
	"github.com/iudanet/gophtext/pkg/api"
)

const (
	siteA = "0a0b0c0d"
	siteB = "1a1b1c1d"
)

// testHashParams облегченные параметры Argon2id для тестов
var testHashParams = crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return decodeResponse[api.ErrorResponse](t, rec)
}

// request создает запрос с аутентифицированным сайтом в контексте
func request(t *testing.T, method, target string, body any, siteID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, target, reader)
	if siteID != "" {
		req = req.WithContext(WithSiteID(req.Context(), siteID))
	}
	return req
}
