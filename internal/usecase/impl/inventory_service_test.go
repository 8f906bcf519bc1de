package impl

import (
	"context"
	"testing"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockRepo "dncommerce/internal/mocks/repository"
	mockSvc "dncommerce/internal/mocks/service"
	"dncommerce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	txManager     *mockRepo.MockTransactionManager
	inventoryRepo *mockRepo.MockInventoryRepository
	cache         *mockSvc.MockProductCache
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	cache := mockSvc.NewMockProductCache(t)

	service := NewInventoryService(InventoryServiceParams{
		TxManager:     txManager,
		InventoryRepo: inventoryRepo,
		Cache:         cache,
		Logger:        newDiscardLogger(),
	})

	return inventoryServiceFixtures{
		service:       service,
		txManager:     txManager,
		inventoryRepo: inventoryRepo,
		cache:         cache,
	}
}

func TestInventoryService_Restock(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)

		inventoryRepo.EXPECT().
			FindByProductID(ctx, int64(1)).
			Return(&entity.InventoryRecord{ProductID: 1, AvailableQuantity: 2}, nil).
			Once()
		inventoryRepo.EXPECT().Restock(ctx, int64(1), 10).Return(nil)
		inventoryRepo.EXPECT().
			FindByProductID(ctx, int64(1)).
			Return(&entity.InventoryRecord{ProductID: 1, AvailableQuantity: 12}, nil).
			Once()
	})
	fx.cache.EXPECT().Invalidate(ctx, int64(1)).Return()

	record, err := fx.service.Restock(ctx, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 12, record.AvailableQuantity)
}

func TestInventoryService_NonPositiveQuantityNeverReachesTheLedger(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	_, err := fx.service.Remove(ctx, 1, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.Restock(ctx, 1, -3)
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.Adjust(ctx, 1, &entity.InventoryAdjustment{MinimumQuantity: ptr(-1)})
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestInventoryService_Remove_InsufficientStock(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)

		inventoryRepo.EXPECT().
			FindByProductID(ctx, int64(1)).
			Return(&entity.InventoryRecord{ProductID: 1, AvailableQuantity: 2}, nil)
		inventoryRepo.EXPECT().
			Reserve(ctx, int64(1), 5).
			Return(domainerrors.NewInsufficientStockError(1, 2, 5))
	})

	record, err := fx.service.Remove(ctx, 1, 5)

	assert.Nil(t, record)
	var insufficient *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, domainerrors.KindInsufficientStock, domainerrors.KindOf(err))
}

func TestInventoryService_Adjust_UnknownProduct(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		inventoryRepo.EXPECT().FindByProductID(ctx, int64(404)).Return(nil, domainerrors.ErrInventoryNotFound)
	})

	_, err := fx.service.Adjust(ctx, 404, &entity.InventoryAdjustment{Location: ptr("Depósito B")})

	assert.ErrorIs(t, err, domainerrors.ErrInventoryNotFound)
}

func TestInventoryService_Adjust(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	adjustment := &entity.InventoryAdjustment{AvailableQuantity: ptr(0), MinimumQuantity: ptr(3)}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)

		inventoryRepo.EXPECT().
			FindByProductID(ctx, int64(1)).
			Return(&entity.InventoryRecord{ProductID: 1, AvailableQuantity: 0, MinimumQuantity: 3}, nil)
		inventoryRepo.EXPECT().Adjust(ctx, int64(1), adjustment).Return(nil)
	})
	fx.cache.EXPECT().Invalidate(ctx, int64(1)).Return()

	record, err := fx.service.Adjust(ctx, 1, adjustment)

	require.NoError(t, err)
	assert.True(t, record.IsLow())
}

func TestInventoryService_ListLowStock(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	records := []*entity.InventoryRecord{
		{ProductID: 2, AvailableQuantity: 0, MinimumQuantity: 5},
		{ProductID: 1, AvailableQuantity: 3, MinimumQuantity: 5},
	}
	fx.inventoryRepo.EXPECT().ListLowStock(ctx).Return(records, nil)

	got, err := fx.service.ListLowStock(ctx)

	require.NoError(t, err)
	assert.Equal(t, records, got)
	fx.inventoryRepo.AssertNotCalled(t, "List", mock.Anything)
}
