// Package context carries the request ID and the request-scoped logger from
// the HTTP and worker entry points down to usecases and repositories.
package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

const (
	// HeaderXRequestID is the HTTP header carrying the request ID.
	HeaderXRequestID = "X-Request-Id"

	// AttrRequestID is the log attribute and message header name of the request ID.
	AttrRequestID = "request_id"

	maxRequestIDLength = 128
)

// NormalizeRequestID returns id when it is safe to echo back in headers and
// logs, otherwise a fresh UUID.
func NormalizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}
	if strings.ContainsFunc(id, func(r rune) bool { return r <= ' ' || r > '~' }) {
		return uuid.NewString()
	}

	return id
}

// Bind stores requestID and a child of base carrying it in ctx. The child also
// carries the trace ID when ctx holds a valid span, plus any extra attrs.
func Bind(ctx context.Context, base *slog.Logger, requestID string, attrs ...any) (context.Context, *slog.Logger) {
	logger := base.With(slog.String(AttrRequestID, requestID))
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		logger = logger.With(slog.String("trace_id", spanCtx.TraceID().String()))
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)

	return ctx, logger
}

// GetRequestID returns the request ID stored on c by the request ID middleware.
// Responses rendered before that middleware ran get a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(AttrRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores requestID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(AttrRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger in ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
