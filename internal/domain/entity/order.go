package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order. Any status may move to any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pendente"
	OrderStatusProcessing OrderStatus = "processando"
	OrderStatusShipped    OrderStatus = "enviado"
	OrderStatusDelivered  OrderStatus = "entregue"
	OrderStatusCancelled  OrderStatus = "cancelado"
)

// Order limits, bounded by the order_lines.quantity and orders.total columns.
const MaxLineQuantity = math.MaxInt32

var MaxOrderTotal = decimal.RequireFromString("999999999999.99")

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is an order header. Total equals the sum of its line subtotals.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`

	// Read-side fields.
	CustomerName  string      `json:"customerName,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	ItemCount     int         `json:"itemCount"`
	Lines         []OrderLine `json:"items,omitempty"`
}

// OrderLine is an immutable sales record: one product at a snapshotted unit price.
type OrderLine struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt time.Time       `json:"createdAt"`

	// Read-side fields.
	ProductName     string    `json:"productName,omitempty"`
	ProductCategory Category  `json:"category,omitempty"`
	ProductBrand    string    `json:"brand,omitempty"`
	OrderStatus     string    `json:"orderStatus,omitempty"`
	OrderedAt       time.Time `json:"orderedAt,omitzero"`
	CustomerName    string    `json:"customerName,omitempty"`
}

// LineItem is a requested product and quantity within a new order.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// NewOrder is the input of the order placement workflow.
type NewOrder struct {
	CustomerID      int64
	DeliveryAddress string
	PaymentMethod   string
	Items           []LineItem
}
