package impl

import (
	"context"
	"log/slog"

	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// stockAlertService implements the StockAlertUsecase interface.
type stockAlertService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// StockAlertServiceParams holds dependencies for StockAlertService, injected by Fx.
type StockAlertServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewStockAlertService creates a new stock alert service instance
func NewStockAlertService(params StockAlertServiceParams) usecase.StockAlertUsecase {
	return &stockAlertService{
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *stockAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderPlaced logs a warning for every ordered product at or below its minimum.
func (srv *stockAlertService) HandleOrderPlaced(ctx context.Context, event *entity.OrderPlacedEvent) ([]*entity.InventoryRecord, error) {
	productIDs := distinctProductIDs(event.Items)
	if len(productIDs) == 0 {
		return nil, nil
	}

	records, err := srv.inventoryRepo.FindByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory for order")
	}

	var alerts []*entity.InventoryRecord
	for _, record := range records {
		if !record.IsLow() {
			continue
		}

		alerts = append(alerts, record)
		srv.log(ctx).Warn("Low stock",
			slog.Int64("orderID", event.OrderID),
			slog.Int64("productID", record.ProductID),
			slog.String("productName", record.ProductName),
			slog.Int("available", record.AvailableQuantity),
			slog.Int("minimum", record.MinimumQuantity),
			slog.String("location", record.Location),
		)
	}

	srv.log(ctx).Debug("Order placed event processed",
		slog.Int64("orderID", event.OrderID),
		slog.Int("products", len(productIDs)),
		slog.Int("alerts", len(alerts)),
	)

	return alerts, nil
}
