package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dncommerce/config"
	deliverycontext "dncommerce/internal/delivery/context"
	domainerrors "dncommerce/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.Timeouts.RequestTimeout = time.Second

	return cfg
}

func newTestServer(buf *bytes.Buffer) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newEcho(newTestConfig(), logger)
}

type logLine struct {
	Level     string `json:"level"`
	Msg       string `json:"msg"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id"`
}

func requestLogLine(t *testing.T, buf *bytes.Buffer) logLine {
	t.Helper()

	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var line logLine
		require.NoError(t, json.Unmarshal(raw, &line))
		if line.Msg == "HTTP Request" {
			return line
		}
	}
	t.Fatalf("no request log line in %s", buf.String())

	return logLine{}
}

func TestServer_ErrorResponsesCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf)
	e.GET("/boom", func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Error string `json:"error"`
		Meta  struct {
			RequestID string `json:"requestId"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ORDER_NOT_FOUND", body.Error)
	assert.Equal(t, "req-123", body.Meta.RequestID)

	line := requestLogLine(t, &buf)
	assert.Equal(t, http.StatusNotFound, line.Status)
	assert.Equal(t, "WARN", line.Level)
	assert.Equal(t, "req-123", line.RequestID)
}

func TestServer_UnknownRoute(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"ROUTE_NOT_FOUND"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_InternalErrorIsLoggedAndHidden(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf)
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("pq: relation does not exist")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation does not exist")
	assert.Contains(t, buf.String(), "relation does not exist")
	assert.Equal(t, "ERROR", requestLogLine(t, &buf).Level)
}

func TestServer_BodyLimit(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf)
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(bytes.Repeat([]byte("a"), 4096)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
}
