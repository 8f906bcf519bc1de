// Package repository defines the interfaces for the persistence layer.
//
// Implementations translate store failures into the taxonomy of
// dncommerce/internal/domain/errors, so callers never inspect driver errors.
package repository

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// Create persists a new product and fills its ID and CreatedAt.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by ID regardless of its active flag.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindActiveWithStock retrieves an active product joined with its inventory.
	FindActiveWithStock(ctx context.Context, id int64) (*entity.ProductWithStock, error)

	// ListActive lists active products with stock, newest first.
	ListActive(ctx context.Context) ([]*entity.ProductWithStock, error)

	// ListActiveByCategory lists active products of a category ordered by name.
	ListActiveByCategory(ctx context.Context, category entity.Category) ([]*entity.ProductWithStock, error)

	// Update applies the non-nil fields of update and returns the stored product.
	Update(ctx context.Context, id int64, update *entity.ProductUpdate) (*entity.Product, error)

	// Deactivate clears the active flag. Deactivating an inactive product succeeds.
	Deactivate(ctx context.Context, id int64) error
}
