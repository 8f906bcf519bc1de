package handler

import (
	"log/slog"
	"net/http"

	"dncommerce/internal/delivery/api/response"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line of a new order
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest represents the request body for placing an order.
// Line items are checked by the order workflow so that an unknown customer is reported first.
type CreateOrderRequest struct {
	CustomerID      int64              `json:"customerId" validate:"gt=0"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,max=50"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// CreateOrder handles order placement
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &entity.NewOrder{
		CustomerID:      req.CustomerID,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Pedido criado com sucesso", order)
}

// ListOrders handles listing all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders)
}

// ListOrdersByCustomer handles listing the orders of a customer
func (h *OrderHandler) ListOrdersByCustomer(c echo.Context) error {
	customerID, ok, err := pathID(c, "customerId")
	if !ok {
		return err
	}

	orders, err := h.orderUC.ListOrdersByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders)
}

// GetOrder handles retrieving an order with its lines
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus handles moving an order to another status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Status do pedido atualizado com sucesso", order)
}

// GetOrderLabel renders the order's QR label as PNG
func (h *OrderHandler) GetOrderLabel(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	png, err := h.orderUC.GenerateOrderLabel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
