package postgres

import (
	"context"
	"time"

	"dncommerce/internal/domain/entity"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const excludeCancelled = "orders.status <> ?"

// reportRepository implements the repository.ReportRepository interface.
// Every query is routed to a read replica when one is configured.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

type dailySalesRow struct {
	Day          time.Time
	LineCount    int64
	Units        int64
	Revenue      decimal.Decimal
	AverageValue decimal.Decimal
}

type productSalesRow struct {
	ProductID   int64
	ProductName string
	Category    string
	Brand       string
	Units       int64
	Revenue     decimal.Decimal
	OrderCount  int64
}

type categorySalesRow struct {
	Category     string
	ProductCount int64
	Units        int64
	Revenue      decimal.Decimal
}

func (repo *reportRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.OrderLineModel{}).
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where(excludeCancelled, entity.OrderStatusCancelled.String())
}

// SalesByPeriod aggregates per day between start and end inclusive, newest day first.
func (repo *reportRepository) SalesByPeriod(ctx context.Context, start, end time.Time) ([]*entity.DailySales, error) {
	var rows []*dailySalesRow

	if err := repo.reader(ctx).
		Select("DATE(orders.created_at) AS day, "+
			"COUNT(order_lines.id) AS line_count, "+
			"COALESCE(SUM(order_lines.quantity), 0) AS units, "+
			"COALESCE(SUM(order_lines.subtotal), 0) AS revenue, "+
			"COALESCE(ROUND(AVG(order_lines.subtotal), 2), 0) AS average_value").
		Where("DATE(orders.created_at) BETWEEN ? AND ?",
			start.Format(time.DateOnly), end.Format(time.DateOnly)).
		Group("DATE(orders.created_at)").
		Order("day DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to aggregate sales by period")
	}

	result := make([]*entity.DailySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.DailySales{
			Day:          row.Day,
			LineCount:    row.LineCount,
			Units:        row.Units,
			Revenue:      row.Revenue,
			AverageValue: row.AverageValue,
		})
	}

	return result, nil
}

// TopProducts lists the best-selling products by units.
func (repo *reportRepository) TopProducts(ctx context.Context, limit int) ([]*entity.ProductSales, error) {
	var rows []*productSalesRow

	if err := repo.reader(ctx).
		Select("products.id AS product_id, "+
			"products.name AS product_name, "+
			"products.category AS category, "+
			"products.brand AS brand, "+
			"SUM(order_lines.quantity) AS units, "+
			"SUM(order_lines.subtotal) AS revenue, "+
			"COUNT(DISTINCT order_lines.order_id) AS order_count").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Group("products.id, products.name, products.category, products.brand").
		Order("units DESC").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list top products")
	}

	result := make([]*entity.ProductSales, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.ProductSales{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Category:    entity.Category(row.Category),
			Brand:       row.Brand,
			Units:       row.Units,
			Revenue:     row.Revenue,
			OrderCount:  row.OrderCount,
		})
	}

	return result, nil
}

// SalesByCategory aggregates revenue per category, highest first.
func (repo *reportRepository) SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error) {
	var rows []*categorySalesRow

	if err := repo.reader(ctx).
		Select("products.category AS category, "+
			"COUNT(DISTINCT products.id) AS product_count, "+
			"SUM(order_lines.quantity) AS units, "+
			"SUM(order_lines.subtotal) AS revenue").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Group("products.category").
		Order("revenue DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to aggregate sales by category")
	}

	result := make([]*entity.CategorySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.CategorySales{
			Category:     entity.Category(row.Category),
			ProductCount: row.ProductCount,
			Units:        row.Units,
			Revenue:      row.Revenue,
		})
	}

	return result, nil
}
