package repository

import (
	"context"
	"time"

	"dncommerce/internal/domain/entity"
)

// ReportRepository defines read-only aggregations over sales. Cancelled orders are excluded.
type ReportRepository interface {
	// SalesByPeriod aggregates per day between start and end inclusive, newest day first.
	SalesByPeriod(ctx context.Context, start, end time.Time) ([]*entity.DailySales, error)

	// TopProducts lists the best-selling products by units.
	TopProducts(ctx context.Context, limit int) ([]*entity.ProductSales, error)

	// SalesByCategory aggregates revenue per category, highest first.
	SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error)
}
