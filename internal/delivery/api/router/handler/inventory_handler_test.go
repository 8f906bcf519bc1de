package handler

import (
	"net/http"
	"testing"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockUC "dncommerce/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryTestServer(t *testing.T) (*echo.Echo, *mockUC.MockInventoryUsecase) {
	inventoryUC := mockUC.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(InventoryHandlerParams{InventoryUC: inventoryUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/inventory", h.ListInventory)
	e.GET("/api/inventory/low-stock", h.ListLowStock)
	e.GET("/api/inventory/products/:productId", h.GetInventory)
	e.PUT("/api/inventory/products/:productId", h.AdjustInventory)
	e.POST("/api/inventory/products/:productId/add", h.Restock)
	e.POST("/api/inventory/products/:productId/remove", h.Remove)

	return e, inventoryUC
}

func TestInventoryHandler_Restock(t *testing.T) {
	t.Run("zero quantity never reaches the ledger", func(t *testing.T) {
		e, _ := newInventoryTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/inventory/products/1/add", `{"quantity":0}`)

		body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		assert.Contains(t, string(body.Details), "quantity")
	})

	t.Run("success", func(t *testing.T) {
		e, inventoryUC := newInventoryTestServer(t)

		inventoryUC.EXPECT().Restock(mock.Anything, int64(1), 10).
			Return(&entity.InventoryRecord{ProductID: 1, AvailableQuantity: 15}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/inventory/products/1/add", `{"quantity":10}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"availableQuantity":15`)
	})
}

func TestInventoryHandler_Remove(t *testing.T) {
	e, inventoryUC := newInventoryTestServer(t)

	inventoryUC.EXPECT().Remove(mock.Anything, int64(1), 5).
		Return(nil, domainerrors.NewInsufficientStockError(1, 3, 5)).
		Once()

	rec := doRequest(e, http.MethodPost, "/api/inventory/products/1/remove", `{"quantity":5}`)

	body := requireError(t, rec, http.StatusBadRequest, "INSUFFICIENT_STOCK")
	assert.JSONEq(t, `{"productId":1,"available":3,"requested":5}`, string(body.Details))
}

func TestInventoryHandler_AdjustInventory(t *testing.T) {
	t.Run("negative minimum", func(t *testing.T) {
		e, _ := newInventoryTestServer(t)

		rec := doRequest(e, http.MethodPut, "/api/inventory/products/1", `{"minimumQuantity":-1}`)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("zero available is allowed", func(t *testing.T) {
		e, inventoryUC := newInventoryTestServer(t)

		inventoryUC.EXPECT().
			Adjust(mock.Anything, int64(1), mock.MatchedBy(func(adj *entity.InventoryAdjustment) bool {
				return adj.AvailableQuantity != nil && *adj.AvailableQuantity == 0 && adj.Location == nil
			})).
			Return(&entity.InventoryRecord{ProductID: 1}, nil).
			Once()

		rec := doRequest(e, http.MethodPut, "/api/inventory/products/1", `{"availableQuantity":0}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestInventoryHandler_ListLowStock(t *testing.T) {
	e, inventoryUC := newInventoryTestServer(t)

	inventoryUC.EXPECT().ListLowStock(mock.Anything).
		Return([]*entity.InventoryRecord{{ProductID: 2, AvailableQuantity: 0}, {ProductID: 1, AvailableQuantity: 3}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/inventory/low-stock", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Total)
	assert.Equal(t, 2, *body.Total)
}
