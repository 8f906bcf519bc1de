package entity

import "time"

// InventoryRecord tracks the stock of a single product. Available never drops below zero.
type InventoryRecord struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"productId"`
	AvailableQuantity int       `json:"availableQuantity"`
	MinimumQuantity   int       `json:"minimumQuantity"`
	Location          string    `json:"location"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Joined product fields, filled on reads.
	ProductName     string   `json:"productName,omitempty"`
	ProductCategory Category `json:"category,omitempty"`
	ProductBrand    string   `json:"brand,omitempty"`
}

// IsLow reports whether the record is at or below its minimum.
func (r *InventoryRecord) IsLow() bool {
	return r.AvailableQuantity <= r.MinimumQuantity
}

// InventoryAdjustment overwrites the given fields; nil fields are left unchanged.
type InventoryAdjustment struct {
	AvailableQuantity *int
	MinimumQuantity   *int
	Location          *string
}
