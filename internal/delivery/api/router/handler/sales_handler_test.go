package handler

import (
	"net/http"
	"testing"
	"time"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockUC "dncommerce/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSalesTestServer(t *testing.T) (*echo.Echo, *mockUC.MockSalesUsecase) {
	salesUC := mockUC.NewMockSalesUsecase(t)
	h := NewSalesHandler(SalesHandlerParams{SalesUC: salesUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/sales", h.ListSales)
	e.GET("/api/sales/product/:productId", h.ListSalesByProduct)
	e.GET("/api/sales/order/:orderId", h.ListSalesByOrder)
	e.GET("/api/sales/reports/period", h.SalesByPeriod)
	e.GET("/api/sales/reports/top-products", h.TopProducts)
	e.GET("/api/sales/reports/categories", h.SalesByCategory)
	e.GET("/api/sales/:id", h.GetSale)

	return e, salesUC
}

func TestSalesHandler_SalesByPeriod(t *testing.T) {
	t.Run("missing dates", func(t *testing.T) {
		e, _ := newSalesTestServer(t)

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/period?start=2026-01-01", "")

		requireError(t, rec, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})

	t.Run("parses both dates", func(t *testing.T) {
		e, salesUC := newSalesTestServer(t)

		start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
		salesUC.EXPECT().SalesByPeriod(mock.Anything, start, end).
			Return([]*entity.DailySales{{Day: start, LineCount: 2}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/period?start=2026-01-01&end=2026-01-31", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("reversed range", func(t *testing.T) {
		e, salesUC := newSalesTestServer(t)

		salesUC.EXPECT().SalesByPeriod(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidDateRange).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/period?start=2026-02-01&end=2026-01-01", "")

		requireError(t, rec, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})
}

func TestSalesHandler_TopProducts(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		e, salesUC := newSalesTestServer(t)

		salesUC.EXPECT().TopProducts(mock.Anything, 0).Return([]*entity.ProductSales{}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/top-products", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit limit", func(t *testing.T) {
		e, salesUC := newSalesTestServer(t)

		salesUC.EXPECT().TopProducts(mock.Anything, 3).Return([]*entity.ProductSales{{ProductID: 1}}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/top-products?limit=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		e, _ := newSalesTestServer(t)

		rec := doRequest(e, http.MethodGet, "/api/sales/reports/top-products?limit=ten", "")

		requireError(t, rec, http.StatusBadRequest, "INVALID_LIMIT")
	})
}

func TestSalesHandler_GetSale(t *testing.T) {
	e, salesUC := newSalesTestServer(t)

	salesUC.EXPECT().GetSale(mock.Anything, int64(9)).Return(nil, domainerrors.ErrSaleNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/api/sales/9", "")

	requireError(t, rec, http.StatusNotFound, "SALE_NOT_FOUND")
}

func TestSalesHandler_ListSalesByOrder(t *testing.T) {
	e, salesUC := newSalesTestServer(t)

	salesUC.EXPECT().ListSalesByOrder(mock.Anything, int64(4)).
		Return([]*entity.OrderLine{{ID: 1, OrderID: 4}, {ID: 2, OrderID: 4}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/sales/order/4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, *decodeEnvelope(t, rec).Total)
}
