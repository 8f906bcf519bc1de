package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySales aggregates the non-cancelled sales of one day.
type DailySales struct {
	Day          time.Time       `json:"day"`
	LineCount    int64           `json:"lineCount"`
	Units        int64           `json:"units"`
	Revenue      decimal.Decimal `json:"revenue"`
	AverageValue decimal.Decimal `json:"averageValue"`
}

// ProductSales aggregates units and revenue of one product.
type ProductSales struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Category    Category        `json:"category"`
	Brand       string          `json:"brand"`
	Units       int64           `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
	OrderCount  int64           `json:"orderCount"`
}

// CategorySales aggregates units and revenue of one category.
type CategorySales struct {
	Category     Category        `json:"category"`
	ProductCount int64           `json:"productCount"`
	Units        int64           `json:"units"`
	Revenue      decimal.Decimal `json:"revenue"`
}
