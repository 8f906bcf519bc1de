package model

import "time"

// InventoryModel is the GORM-specific struct for the 'inventory' table.
// One row per product; available_quantity is guarded by a CHECK (>= 0).
type InventoryModel struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	ProductID         int64     `gorm:"not null;uniqueIndex:inventory_product_id_key"`
	AvailableQuantity int       `gorm:"not null;default:0"`
	MinimumQuantity   int       `gorm:"not null;default:5"`
	Location          string    `gorm:"type:varchar(100);not null"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
