package entity

import "time"

// OrderPlacedEvent is published after an order commits.
type OrderPlacedEvent struct {
	Type       string     `json:"type"`
	RequestID  string     `json:"requestId,omitempty"` // For distributed tracing
	OrderID    int64      `json:"orderId"`
	CustomerID int64      `json:"customerId"`
	Total      string     `json:"total"`
	Items      []LineItem `json:"items"`
	PlacedAt   time.Time  `json:"placedAt"`
}
