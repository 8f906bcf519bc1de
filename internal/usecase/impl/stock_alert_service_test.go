package impl

import (
	"context"
	"testing"

	"dncommerce/internal/domain/entity"
	mockRepo "dncommerce/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockAlertService_HandleOrderPlaced(t *testing.T) {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewStockAlertService(StockAlertServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	event := &entity.OrderPlacedEvent{
		OrderID: 42,
		Items: []entity.LineItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 1},
		},
	}

	inventoryRepo.EXPECT().
		FindByProductIDs(ctx, []int64{1, 2}).
		Return([]*entity.InventoryRecord{
			{ProductID: 1, AvailableQuantity: 5, MinimumQuantity: 5},
			{ProductID: 2, AvailableQuantity: 30, MinimumQuantity: 5},
		}, nil)

	alerts, err := service.HandleOrderPlaced(ctx, event)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(1), alerts[0].ProductID)
}

func TestStockAlertService_HandleOrderPlaced_StoreFailure(t *testing.T) {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewStockAlertService(StockAlertServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	inventoryRepo.EXPECT().FindByProductIDs(ctx, []int64{1}).Return(nil, errors.New("connection reset"))

	_, err := service.HandleOrderPlaced(ctx, &entity.OrderPlacedEvent{
		OrderID: 1,
		Items:   []entity.LineItem{{ProductID: 1, Quantity: 1}},
	})

	assert.Error(t, err)
}

func TestStockAlertService_HandleOrderPlaced_NoItems(t *testing.T) {
	service := NewStockAlertService(StockAlertServiceParams{
		InventoryRepo: mockRepo.NewMockInventoryRepository(t),
		Logger:        newDiscardLogger(),
	})

	alerts, err := service.HandleOrderPlaced(context.Background(), &entity.OrderPlacedEvent{OrderID: 1})

	require.NoError(t, err)
	assert.Empty(t, alerts)
}
