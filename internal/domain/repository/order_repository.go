package repository

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// OrderRepository defines the interface for order header database operations.
type OrderRepository interface {
	// Create persists an order header and fills its ID and CreatedAt.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with customer contact fields and item count.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// List lists all orders newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByCustomer lists the orders of a customer newest first.
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
}
