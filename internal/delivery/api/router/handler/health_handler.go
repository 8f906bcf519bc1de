package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dncommerce/internal/delivery/api/response"
	deliverycontext "dncommerce/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports service and database health
type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			return errors.WithStack(sqlDB.PingContext(ctx))
		},
		logger: params.Logger,
	}
}

// HealthCheck pings the database and reports 503 when it is unreachable
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Database health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Banco de dados indisponível", nil)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status":    "ok",
		"database":  "up",
		"timestamp": time.Now().UTC(),
	})
}
