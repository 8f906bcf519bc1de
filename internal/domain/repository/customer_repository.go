package repository

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// CustomerRepository defines the interface for customer database operations.
type CustomerRepository interface {
	// Create persists a new customer and fills its ID and RegisteredAt.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by ID.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByEmail retrieves a customer by email.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// List lists all customers, most recently registered first.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Update applies the non-nil fields of update and returns the stored customer.
	Update(ctx context.Context, id int64, update *entity.CustomerUpdate) (*entity.Customer, error)

	// Delete physically removes a customer.
	Delete(ctx context.Context, id int64) error

	// CountOrders counts the orders placed by a customer.
	CountOrders(ctx context.Context, id int64) (int64, error)
}
