package usecase

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// InventoryUsecase defines the interface for inventory ledger use cases.
// Mutations return the record as stored after the change.
type InventoryUsecase interface {
	// GetInventory retrieves the record of an active product
	GetInventory(ctx context.Context, productID int64) (*entity.InventoryRecord, error)

	// ListInventory lists the records of active products ordered by name
	ListInventory(ctx context.Context) ([]*entity.InventoryRecord, error)

	// ListLowStock lists records at or below their minimum, lowest first
	ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error)

	// Restock adds quantity units to a product
	Restock(ctx context.Context, productID int64, quantity int) (*entity.InventoryRecord, error)

	// Remove takes quantity units out of a product, failing when stock is short
	Remove(ctx context.Context, productID int64, quantity int) (*entity.InventoryRecord, error)

	// Adjust overwrites available, minimum or location
	Adjust(ctx context.Context, productID int64, adjustment *entity.InventoryAdjustment) (*entity.InventoryRecord, error)
}
