package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dncommerce/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx/fxtest"
)

func TestSetup_Disabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	err := Setup(Params{
		Lifecycle: lc,
		Ctx:       context.Background(),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestNewTracerProvider(t *testing.T) {
	provider, err := NewTracerProvider(context.Background(), "dncommerce-test", &config.TracingConfig{
		Enabled:  true,
		Endpoint: "localhost:4318",
		Insecure: true,
	})
	require.NoError(t, err)

	_, span := provider.Tracer("test").Start(context.Background(), "operation")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = provider.Shutdown(ctx)
}

func TestSampler(t *testing.T) {
	assert.Contains(t, sampler(0).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}

func TestServiceName(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, defaultServiceName, serviceName(cfg))

	cfg.Env.ServiceName = "dncommerce-api"
	assert.Equal(t, "dncommerce-api", serviceName(cfg))
}
