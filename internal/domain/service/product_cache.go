// Package service defines ports for infrastructure services used by the use cases.
package service

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// ProductCache stores catalog reads by product ID.
// Implementations treat backend failures as misses.
type ProductCache interface {
	// Get returns the cached product and whether it was found.
	Get(ctx context.Context, id int64) (*entity.ProductWithStock, bool)

	// Set stores a product.
	Set(ctx context.Context, product *entity.ProductWithStock)

	// Invalidate removes a product.
	Invalidate(ctx context.Context, id int64)
}
