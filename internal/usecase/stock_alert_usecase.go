package usecase

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// StockAlertUsecase defines the interface for low-stock alerts raised by placed orders
type StockAlertUsecase interface {
	// HandleOrderPlaced checks the products of a placed order and reports those at or
	// below their minimum. It returns the records that raised an alert.
	HandleOrderPlaced(ctx context.Context, event *entity.OrderPlacedEvent) ([]*entity.InventoryRecord, error)
}
