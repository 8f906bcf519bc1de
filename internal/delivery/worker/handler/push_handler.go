package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dncommerce/config"
	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const pushTracerName = "dncommerce/stockworker"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler handles Pub/Sub push messages carrying order events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	processor      *OrderEventProcessor
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor *OrderEventProcessor
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token, and not in local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		processor:      params.Processor,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged so they are not redelivered; store failures return 500.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Dropping unparseable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Dropping message with undecodable data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	event, err := h.processor.Decode(data)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed order event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Resume the publisher's trace; local pushes carry it in the attributes too.
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(pushMsg.Message.Attributes))
	ctx, span := otel.Tracer(pushTracerName).Start(ctx, "order.push",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("messaging.message.id", pushMsg.Message.MessageID)),
	)
	defer span.End()

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.Bind(ctx, h.logger, requestID,
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processor.Process(ctx, event, reqLogger); err != nil {
		if IsMalformed(err) {
			reqLogger.Error("[Worker] Dropping malformed order event", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, "order event processing failed")
		reqLogger.Error("[Worker] Failed to process order event", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.OrderPlacedEvent) string {
	if requestID := pushMsg.Message.Attributes[deliverycontext.AttrRequestID]; requestID != "" {
		return deliverycontext.NormalizeRequestID(requestID)
	}

	if event.RequestID != "" {
		return deliverycontext.NormalizeRequestID(event.RequestID)
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	return deliverycontext.NormalizeRequestID(deliverycontext.GetRequestIDFromContext(ctx))
}

// verifyPubSubToken validates the OIDC token Google attaches to authenticated push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
