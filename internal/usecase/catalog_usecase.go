package usecase

import (
	"context"

	"dncommerce/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput represents the data required to add a product to the catalog
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    entity.Category
	Brand       string
}

// CatalogUsecase defines the interface for catalog use cases
type CatalogUsecase interface {
	// CreateProduct creates a product together with its empty inventory record
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.ProductWithStock, error)

	// GetProduct retrieves an active product with its stock
	GetProduct(ctx context.Context, id int64) (*entity.ProductWithStock, error)

	// ListProducts lists active products, newest first
	ListProducts(ctx context.Context) ([]*entity.ProductWithStock, error)

	// ListProductsByCategory lists active products of a category ordered by name
	ListProductsByCategory(ctx context.Context, category entity.Category) ([]*entity.ProductWithStock, error)

	// UpdateProduct applies a partial update, including re-activation
	UpdateProduct(ctx context.Context, id int64, update *entity.ProductUpdate) (*entity.Product, error)

	// DeleteProduct deactivates a product (soft delete). Repeating it succeeds.
	DeleteProduct(ctx context.Context, id int64) error
}
