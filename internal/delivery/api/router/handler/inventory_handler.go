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

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for inventory handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// StockMovementRequest represents the body of a restock or removal
type StockMovementRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// AdjustInventoryRequest represents the body of an inventory adjustment
type AdjustInventoryRequest struct {
	AvailableQuantity *int    `json:"availableQuantity" validate:"omitempty,gte=0"`
	MinimumQuantity   *int    `json:"minimumQuantity" validate:"omitempty,gte=0"`
	Location          *string `json:"location" validate:"omitempty,max=100"`
}

// ListInventory handles listing the inventory of active products
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	records, err := h.inventoryUC.ListInventory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, records)
}

// ListLowStock handles listing records at or below their minimum
func (h *InventoryHandler) ListLowStock(c echo.Context) error {
	records, err := h.inventoryUC.ListLowStock(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, records)
}

// GetInventory handles retrieving the inventory of one product
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	productID, ok, err := pathID(c, "productId")
	if !ok {
		return err
	}

	record, err := h.inventoryUC.GetInventory(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// AdjustInventory handles overwriting available, minimum or location
func (h *InventoryHandler) AdjustInventory(c echo.Context) error {
	productID, ok, err := pathID(c, "productId")
	if !ok {
		return err
	}

	var req AdjustInventoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	record, err := h.inventoryUC.Adjust(c.Request().Context(), productID, &entity.InventoryAdjustment{
		AvailableQuantity: req.AvailableQuantity,
		MinimumQuantity:   req.MinimumQuantity,
		Location:          req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Estoque atualizado com sucesso", record)
}

// Restock handles adding units to a product
func (h *InventoryHandler) Restock(c echo.Context) error {
	productID, ok, err := pathID(c, "productId")
	if !ok {
		return err
	}

	var req StockMovementRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	record, err := h.inventoryUC.Restock(c.Request().Context(), productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Estoque adicionado com sucesso", record)
}

// Remove handles taking units out of a product
func (h *InventoryHandler) Remove(c echo.Context) error {
	productID, ok, err := pathID(c, "productId")
	if !ok {
		return err
	}

	var req StockMovementRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	record, err := h.inventoryUC.Remove(c.Request().Context(), productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Estoque removido com sucesso", record)
}
