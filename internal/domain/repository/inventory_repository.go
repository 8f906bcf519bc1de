package repository

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// InventoryRepository defines the interface for the inventory ledger.
type InventoryRepository interface {
	// Create persists the inventory record of a product.
	Create(ctx context.Context, record *entity.InventoryRecord) error

	// FindByProductID retrieves the record of an active product.
	FindByProductID(ctx context.Context, productID int64) (*entity.InventoryRecord, error)

	// FindByProductIDs retrieves the records of the given products, active or not.
	FindByProductIDs(ctx context.Context, productIDs []int64) ([]*entity.InventoryRecord, error)

	// List lists the records of active products ordered by product name.
	List(ctx context.Context) ([]*entity.InventoryRecord, error)

	// ListLowStock lists active-product records with available <= minimum, lowest available first.
	ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error)

	// Reserve atomically decrements available by quantity only when enough stock exists.
	// It fails with an InsufficientStockError carrying the current available amount.
	Reserve(ctx context.Context, productID int64, quantity int) error

	// Restock increments available by quantity.
	Restock(ctx context.Context, productID int64, quantity int) error

	// Adjust overwrites the non-nil fields of adjustment.
	Adjust(ctx context.Context, productID int64, adjustment *entity.InventoryAdjustment) error

	// SnapshotForProducts reads price, active flag and availability of the given products
	// in one query. Unknown ids are absent from the result.
	SnapshotForProducts(ctx context.Context, productIDs []int64) (map[int64]*entity.ProductStock, error)
}
