package usecase

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// OrderUsecase defines the interface for the order workflow
type OrderUsecase interface {
	// PlaceOrder validates every line against live stock, prices it and persists the
	// order, its lines and the stock reservations as one unit
	PlaceOrder(ctx context.Context, order *entity.NewOrder) (*entity.Order, error)

	// GetOrder retrieves an order with its lines
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrders lists all orders, newest first
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByCustomer lists the orders of a customer, newest first
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order to any status
	UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)

	// GenerateOrderLabel renders the PNG QR label of an order
	GenerateOrderLabel(ctx context.Context, id int64) ([]byte, error)
}
