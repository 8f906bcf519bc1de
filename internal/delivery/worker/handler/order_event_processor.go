package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errMalformedEvent marks messages that can never be processed. They are acknowledged, not retried.
var errMalformedEvent = errors.New("malformed order event")

// IsMalformed reports whether err was caused by an unprocessable message.
func IsMalformed(err error) bool {
	return errors.Is(err, errMalformedEvent)
}

// OrderEventProcessorParams holds dependencies for OrderEventProcessor, injected by Fx.
type OrderEventProcessorParams struct {
	fx.In

	StockAlertUC usecase.StockAlertUsecase
	Logger       *slog.Logger
}

// OrderEventProcessor decodes order events and raises low-stock alerts.
// It is shared by the push endpoint and the Kafka consumer.
type OrderEventProcessor struct {
	stockAlertUC usecase.StockAlertUsecase
	logger       *slog.Logger
}

// NewOrderEventProcessor creates a new OrderEventProcessor
func NewOrderEventProcessor(params OrderEventProcessorParams) *OrderEventProcessor {
	return &OrderEventProcessor{
		stockAlertUC: params.StockAlertUC,
		logger:       params.Logger,
	}
}

// Decode parses an order event payload. Errors wrap errMalformedEvent.
func (p *OrderEventProcessor) Decode(data []byte) (*entity.OrderPlacedEvent, error) {
	var event entity.OrderPlacedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(errMalformedEvent, err.Error())
	}

	return &event, nil
}

// Process handles one decoded event. Events of other types are skipped.
func (p *OrderEventProcessor) Process(ctx context.Context, event *entity.OrderPlacedEvent, logger *slog.Logger) error {
	if event.Type != constants.EventTypeOrderPlaced {
		logger.Info("[Worker] Ignoring event", slog.String("event_type", event.Type))

		return nil
	}

	if event.OrderID <= 0 || len(event.Items) == 0 {
		return errors.Wrapf(errMalformedEvent, "order event %d has no items", event.OrderID)
	}

	logger.Info("[Worker] Processing order event",
		slog.Int64("order_id", event.OrderID),
		slog.Int("item_count", len(event.Items)),
	)

	alerts, err := p.stockAlertUC.HandleOrderPlaced(ctx, event)
	if err != nil {
		return errors.Wrapf(err, "failed to check stock for order %d", event.OrderID)
	}

	logger.Info("[Worker] Order event processed",
		slog.Int64("order_id", event.OrderID),
		slog.Int("alert_count", len(alerts)),
	)

	return nil
}
