package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dncommerce/internal/delivery/api/response"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SalesHandlerParams holds dependencies for SalesHandler, injected by Fx.
type SalesHandlerParams struct {
	fx.In

	SalesUC usecase.SalesUsecase
	Logger  *slog.Logger
}

// SalesHandler holds dependencies for sales ledger and report handlers
type SalesHandler struct {
	salesUC usecase.SalesUsecase
	logger  *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler
func NewSalesHandler(params SalesHandlerParams) *SalesHandler {
	return &SalesHandler{
		salesUC: params.SalesUC,
		logger:  params.Logger,
	}
}

// ListSales handles listing every sale
func (h *SalesHandler) ListSales(c echo.Context) error {
	sales, err := h.salesUC.ListSales(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, sales)
}

// GetSale handles retrieving one sale
func (h *SalesHandler) GetSale(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	sale, err := h.salesUC.GetSale(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale)
}

// ListSalesByProduct handles listing the sales of a product
func (h *SalesHandler) ListSalesByProduct(c echo.Context) error {
	productID, ok, err := pathID(c, "productId")
	if !ok {
		return err
	}

	sales, err := h.salesUC.ListSalesByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, sales)
}

// ListSalesByOrder handles listing the sales of an order
func (h *SalesHandler) ListSalesByOrder(c echo.Context) error {
	orderID, ok, err := pathID(c, "orderId")
	if !ok {
		return err
	}

	sales, err := h.salesUC.ListSalesByOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, sales)
}

// SalesByPeriod handles the daily sales report. Both start and end are YYYY-MM-DD.
func (h *SalesHandler) SalesByPeriod(c echo.Context) error {
	start, startErr := time.Parse(time.DateOnly, c.QueryParam("start"))
	end, endErr := time.Parse(time.DateOnly, c.QueryParam("end"))
	if startErr != nil || endErr != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidDateRange.WithMessage("start e end são obrigatórios no formato YYYY-MM-DD"))
	}

	report, err := h.salesUC.SalesByPeriod(c.Request().Context(), start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, report)
}

// TopProducts handles the best-sellers report
func (h *SalesHandler) TopProducts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit deve ser um número inteiro")
		}
		limit = parsed
	}

	report, err := h.salesUC.TopProducts(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, report)
}

// SalesByCategory handles the per-category revenue report
func (h *SalesHandler) SalesByCategory(c echo.Context) error {
	report, err := h.salesUC.SalesByCategory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, report)
}
