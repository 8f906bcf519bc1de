// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the catalog section a product belongs to.
type Category string

const (
	CategoryMakeup   Category = "Maquiagem"
	CategorySkincare Category = "Skincare"
	CategoryPerfume  Category = "Perfumes"
	CategoryHair     Category = "Cabelos"
	CategoryBody     Category = "Corpo"
	CategoryNails    Category = "Unhas"
)

// Categories lists every accepted category in display order.
var Categories = []Category{
	CategoryMakeup,
	CategorySkincare,
	CategoryPerfume,
	CategoryHair,
	CategoryBody,
	CategoryNails,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the accepted values.
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// Price limits for catalog products.
var (
	MaxProductPrice = decimal.RequireFromString("999999.99")
)

// Product is a sellable catalog item. Inactive products stay in the table for sales history.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Brand       string          `json:"brand"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductWithStock is a product joined with its inventory record.
type ProductWithStock struct {
	Product
	AvailableQuantity int    `json:"availableQuantity"`
	MinimumQuantity   int    `json:"minimumQuantity"`
	Location          string `json:"location,omitempty"`
}

// ProductUpdate carries the optional fields of a partial product update.
// Nil fields keep their stored value.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *Category
	Brand       *string
	Active      *bool
}

// ProductStock is the pricing and availability snapshot read while placing an order.
type ProductStock struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Active    bool
	Available int
}
