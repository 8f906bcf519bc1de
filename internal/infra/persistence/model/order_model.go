package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64           `gorm:"not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table (sales ledger).
type OrderLineModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
