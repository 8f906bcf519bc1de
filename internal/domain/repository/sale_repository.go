package repository

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// SaleRepository defines the interface for the append-only sales ledger (order lines).
type SaleRepository interface {
	// Create appends a line and fills its ID and CreatedAt.
	Create(ctx context.Context, line *entity.OrderLine) error

	// FindByID retrieves a line with product and order context.
	FindByID(ctx context.Context, id int64) (*entity.OrderLine, error)

	// List lists every line newest first.
	List(ctx context.Context) ([]*entity.OrderLine, error)

	// ListByProduct lists the lines of a product newest first.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.OrderLine, error)

	// ListByOrder lists the lines of an order in insertion order.
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)
}
