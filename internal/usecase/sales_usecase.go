package usecase

import (
	"context"
	"time"

	"dncommerce/internal/domain/entity"
)

// DefaultTopProductsLimit is used when no limit is requested
const DefaultTopProductsLimit = 10

// MaxTopProductsLimit bounds the top products report
const MaxTopProductsLimit = 100

// SalesUsecase defines the interface for sales ledger reads and reports
type SalesUsecase interface {
	// ListSales lists every sale, newest first
	ListSales(ctx context.Context) ([]*entity.OrderLine, error)

	// GetSale retrieves a sale by ID
	GetSale(ctx context.Context, id int64) (*entity.OrderLine, error)

	// ListSalesByProduct lists the sales of a product, newest first
	ListSalesByProduct(ctx context.Context, productID int64) ([]*entity.OrderLine, error)

	// ListSalesByOrder lists the sales of an order
	ListSalesByOrder(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)

	// SalesByPeriod aggregates sales per day between start and end inclusive
	SalesByPeriod(ctx context.Context, start, end time.Time) ([]*entity.DailySales, error)

	// TopProducts lists the best-selling products. Zero selects DefaultTopProductsLimit.
	TopProducts(ctx context.Context, limit int) ([]*entity.ProductSales, error)

	// SalesByCategory aggregates revenue per category
	SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error)
}
