package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "database up", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{
				ping:   func(context.Context) error { return tt.pingErr },
				logger: newDiscardLogger(),
			}
			e := newTestEcho()
			e.GET("/health", h.HealthCheck)

			rec := doRequest(e, http.MethodGet, "/health", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, tt.pingErr == nil, body.Success)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
