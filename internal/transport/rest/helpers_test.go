package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate moq -out body_service_mock_test.go -pkg rest . bodyService
//go:generate moq -out product_service_mock_test.go -pkg rest . productService
//go:generate moq -out inspection_service_mock_test.go -pkg rest . inspectionService
//go:generate moq -out report_service_mock_test.go -pkg rest . reportService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve dispatches one request through a router holding the given handlers.
func serve(t *testing.T, cfg RouterConfig, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	if cfg.Log == nil {
		cfg.Log = discardLogger()
	}
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	NewRouter(cfg).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }

