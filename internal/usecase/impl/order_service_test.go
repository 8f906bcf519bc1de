package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockRepo "dncommerce/internal/mocks/repository"
	mockSvc "dncommerce/internal/mocks/service"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	saleRepo     *mockRepo.MockSaleRepository
	publisher    *mockSvc.MockEventPublisher
	qrCode       *mockSvc.MockQRCodeService
	cache        *mockSvc.MockProductCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	cache := mockSvc.NewMockProductCache(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		SaleRepo:     saleRepo,
		Publisher:    publisher,
		QRCode:       qrCode,
		Cache:        cache,
		Logger:       newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		publisher:    publisher,
		qrCode:       qrCode,
		cache:        cache,
	}
}

func newTestOrder(items ...entity.LineItem) *entity.NewOrder {
	return &entity.NewOrder{
		CustomerID:      7,
		DeliveryAddress: "Rua das Flores, 123 - São Paulo",
		PaymentMethod:   "cartao",
		Items:           items,
	}
}

func stock(id int64, price string, available int) *entity.ProductStock {
	return &entity.ProductStock{
		ProductID: id,
		Name:      "Produto " + decimal.NewFromInt(id).String(),
		Price:     decimal.RequireFromString(price),
		Active:    true,
		Available: available,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	newOrder := newTestOrder(
		entity.LineItem{ProductID: 1, Quantity: 2},
		entity.LineItem{ProductID: 2, Quantity: 2},
	)
	placedAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)

	var createdLines []*entity.OrderLine
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		saleRepo := mockRepo.NewMockSaleRepository(t)

		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().SaleRepo().Return(saleRepo)

		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{1, 2}).
			Return(map[int64]*entity.ProductStock{
				1: stock(1, "10.00", 5),
				2: stock(2, "7.50", 10),
			}, nil)

		orderRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) {
				assert.Equal(t, entity.OrderStatusPending, order.Status)
				assert.True(t, decimal.RequireFromString("35.00").Equal(order.Total))
				order.ID = 42
				order.CreatedAt = placedAt
			}).
			Return(nil)

		saleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.OrderLine")).
			Run(func(_ context.Context, line *entity.OrderLine) {
				assert.Equal(t, int64(42), line.OrderID)
				createdLines = append(createdLines, line)
			}).
			Return(nil).
			Times(2)

		inventoryRepo.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once()
		inventoryRepo.EXPECT().Reserve(mock.Anything, int64(2), 2).Return(nil).Once()
	})

	fx.cache.EXPECT().Invalidate(mock.Anything, int64(1)).Return()
	fx.cache.EXPECT().Invalidate(mock.Anything, int64(2)).Return()
	fx.publisher.EXPECT().
		PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*entity.OrderPlacedEvent")).
		Run(func(_ context.Context, event *entity.OrderPlacedEvent) {
			assert.Equal(t, constants.EventTypeOrderPlaced, event.Type)
			assert.Equal(t, int64(42), event.OrderID)
			assert.Equal(t, "35.00", event.Total)
			assert.Equal(t, placedAt, event.PlacedAt)
			assert.Len(t, event.Items, 2)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, newOrder)

	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "35.00", order.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 2, order.ItemCount)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "20.00", order.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "15.00", order.Lines[1].Subtotal.StringFixed(2))

	// Each persisted line carries the same price used for the total.
	require.Len(t, createdLines, 2)
	assert.Equal(t, "10.00", createdLines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "7.50", createdLines[1].UnitPrice.StringFixed(2))
}

func TestOrderService_PlaceOrder_CustomerNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, domainerrors.ErrCustomerNotFound)

	order, err := fx.service.PlaceOrder(ctx, newTestOrder(entity.LineItem{ProductID: 1, Quantity: 1}))

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestOrderService_PlaceOrder_InvalidLinesNeverReachTheLedger(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
	}{
		{name: "no items", items: nil},
		{name: "zero quantity", items: []entity.LineItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 0}}},
		{name: "negative quantity", items: []entity.LineItem{{ProductID: 1, Quantity: -1}}},
		{name: "missing product id", items: []entity.LineItem{{ProductID: 0, Quantity: 1}}},
		{name: "quantity above line limit", items: []entity.LineItem{{ProductID: 1, Quantity: entity.MaxLineQuantity + 1}}},
		{name: "repeated huge quantities", items: []entity.LineItem{{ProductID: 1, Quantity: 1 << 62}, {ProductID: 1, Quantity: 1 << 62}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)

			// No transaction expectation: touching the ledger fails the test.
			order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(tt.items...))

			assert.Nil(t, order)
			require.ErrorIs(t, err, domainerrors.ErrInvalidLineItem)
			assert.Equal(t, http.StatusBadRequest, domainerrors.KindOf(err).HTTPCode())
		})
	}
}

func TestOrderService_PlaceOrder_CollectsEveryFailure(t *testing.T) {
	fx := createTestOrderService(t)

	inactive := stock(2, "15.00", 50)
	inactive.Active = false

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)

		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{99, 2, 3, 4}).
			Return(map[int64]*entity.ProductStock{
				2: inactive,
				3: stock(3, "12.00", 1),
				4: stock(4, "5.00", 10),
			}, nil)
	})

	order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(
		entity.LineItem{ProductID: 99, Quantity: 1},
		entity.LineItem{ProductID: 2, Quantity: 1},
		entity.LineItem{ProductID: 3, Quantity: 4},
		entity.LineItem{ProductID: 4, Quantity: 1},
	))

	assert.Nil(t, order)

	var rejected *domainerrors.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	require.Len(t, rejected.Failures, 3)

	assert.Equal(t, int64(99), rejected.Failures[0].ProductID)
	assert.Equal(t, domainerrors.LineFailureProductNotFound, rejected.Failures[0].Reason)
	assert.Equal(t, int64(2), rejected.Failures[1].ProductID)
	assert.Equal(t, domainerrors.LineFailureProductNotFound, rejected.Failures[1].Reason)
	assert.Equal(t, int64(3), rejected.Failures[2].ProductID)
	assert.Equal(t, domainerrors.LineFailureInsufficientStock, rejected.Failures[2].Reason)
	assert.Equal(t, 1, *rejected.Failures[2].Available)
	assert.Equal(t, 4, *rejected.Failures[2].Requested)

	assert.Equal(t, http.StatusBadRequest, rejected.HTTPCode())
}

func TestOrderService_PlaceOrder_AllProductsMissing(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		inventoryRepo.EXPECT().SnapshotForProducts(mock.Anything, []int64{98, 99}).Return(map[int64]*entity.ProductStock{}, nil)
	})

	_, err := fx.service.PlaceOrder(context.Background(), newTestOrder(
		entity.LineItem{ProductID: 98, Quantity: 1},
		entity.LineItem{ProductID: 99, Quantity: 1},
	))

	var rejected *domainerrors.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Len(t, rejected.Failures, 2)
	assert.Equal(t, http.StatusNotFound, rejected.HTTPCode())
}

func TestOrderService_PlaceOrder_RepeatedProductUsesCumulativeQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{1}).
			Return(map[int64]*entity.ProductStock{1: stock(1, "10.00", 5)}, nil)
	})

	_, err := fx.service.PlaceOrder(context.Background(), newTestOrder(
		entity.LineItem{ProductID: 1, Quantity: 3},
		entity.LineItem{ProductID: 1, Quantity: 3},
	))

	var rejected *domainerrors.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	require.Len(t, rejected.Failures, 1)
	assert.Equal(t, 5, *rejected.Failures[0].Available)
	assert.Equal(t, 6, *rejected.Failures[0].Requested)
}

func TestCheckLines_LargeRepeatedQuantitiesStayPositive(t *testing.T) {
	items := []entity.LineItem{
		{ProductID: 1, Quantity: entity.MaxLineQuantity},
		{ProductID: 1, Quantity: entity.MaxLineQuantity},
	}

	failures := checkLines(items, requestedQuantities(items), map[int64]*entity.ProductStock{1: stock(1, "10.00", 5)})

	require.Len(t, failures, 1)
	assert.Equal(t, domainerrors.LineFailureInsufficientStock, failures[0].Reason)
	assert.Equal(t, 2*entity.MaxLineQuantity, *failures[0].Requested)
}

func TestOrderService_PlaceOrder_ReservesInAscendingProductOrder(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		saleRepo := mockRepo.NewMockSaleRepository(t)

		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().SaleRepo().Return(saleRepo)

		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{3, 1}).
			Return(map[int64]*entity.ProductStock{
				1: stock(1, "10.00", 5),
				3: stock(3, "4.00", 10),
			}, nil)
		orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
		saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.OrderLine")).Return(nil).Times(3)

		// One reservation per product, for its cumulative quantity, lowest id first.
		mock.InOrder(
			inventoryRepo.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once(),
			inventoryRepo.EXPECT().Reserve(mock.Anything, int64(3), 3).Return(nil).Once(),
		)
	})
	fx.cache.EXPECT().Invalidate(mock.Anything, mock.AnythingOfType("int64")).Return()
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(
		entity.LineItem{ProductID: 3, Quantity: 1},
		entity.LineItem{ProductID: 1, Quantity: 2},
		entity.LineItem{ProductID: 3, Quantity: 2},
	))

	require.NoError(t, err)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, "32.00", order.Total.StringFixed(2))
}

func TestOrderService_PlaceOrder_TotalAboveLimitIsRejected(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{1}).
			Return(map[int64]*entity.ProductStock{1: stock(1, "999999.99", entity.MaxLineQuantity)}, nil)
	})

	// No OrderRepo expectation: nothing is written.
	order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(
		entity.LineItem{ProductID: 1, Quantity: 2_000_000},
	))

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, domainerrors.KindOf(err).HTTPCode())
}

func TestOrderService_PlaceOrder_ConcurrentReservationRollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		saleRepo := mockRepo.NewMockSaleRepository(t)

		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().SaleRepo().Return(saleRepo)

		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{1}).
			Return(map[int64]*entity.ProductStock{1: stock(1, "10.00", 5)}, nil)
		orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
		saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.OrderLine")).Return(nil)
		inventoryRepo.EXPECT().
			Reserve(mock.Anything, int64(1), 4).
			Return(domainerrors.NewInsufficientStockError(1, 2, 4))
	})

	// No publish and no cache invalidation for a rolled back order.
	order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(entity.LineItem{ProductID: 1, Quantity: 4}))

	assert.Nil(t, order)
	var insufficient *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 4, insufficient.Requested)
}

func TestOrderService_PlaceOrder_PublishFailureKeepsOrder(t *testing.T) {
	fx := createTestOrderService(t)

	fx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		saleRepo := mockRepo.NewMockSaleRepository(t)

		factory.EXPECT().InventoryRepo().Return(inventoryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().SaleRepo().Return(saleRepo)

		inventoryRepo.EXPECT().
			SnapshotForProducts(mock.Anything, []int64{1}).
			Return(map[int64]*entity.ProductStock{1: stock(1, "10.00", 5)}, nil)
		orderRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) { order.ID = 5 }).
			Return(nil)
		saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.OrderLine")).Return(nil)
		inventoryRepo.EXPECT().Reserve(mock.Anything, int64(1), 1).Return(nil)
	})
	fx.cache.EXPECT().Invalidate(mock.Anything, int64(1)).Return()
	fx.publisher.EXPECT().
		PublishOrderPlaced(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.PlaceOrder(context.Background(), newTestOrder(entity.LineItem{ProductID: 1, Quantity: 1}))

	require.NoError(t, err)
	assert.Equal(t, int64(5), order.ID)
}

func TestOrderService_GetOrder_WithLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	lines := []*entity.OrderLine{
		{ID: 1, OrderID: 3, ProductID: 1, Quantity: 2, ProductName: "Batom Matte"},
		{ID: 2, OrderID: 3, ProductID: 2, Quantity: 1, ProductName: "Sérum Facial"},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Order{ID: 3, ItemCount: 2}, nil)
	fx.saleRepo.EXPECT().ListByOrder(ctx, int64(3)).Return(lines, nil)

	order, err := fx.service.GetOrder(ctx, 3)

	require.NoError(t, err)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Batom Matte", order.Lines[0].ProductName)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, domainerrors.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, 3)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrdersByCustomer_UnknownCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, domainerrors.ErrCustomerNotFound)

	orders, err := fx.service.ListOrdersByCustomer(ctx, 8)

	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Run("any status may follow any other", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		fx.orderRepo.EXPECT().UpdateStatus(ctx, int64(3), entity.OrderStatusPending).Return(nil)
		fx.orderRepo.EXPECT().
			FindByID(ctx, int64(3)).
			Return(&entity.Order{ID: 3, Status: entity.OrderStatusPending}, nil)

		order, err := fx.service.UpdateOrderStatus(ctx, 3, entity.OrderStatusPending)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		order, err := fx.service.UpdateOrderStatus(context.Background(), 3, entity.OrderStatus("perdido"))

		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		fx.orderRepo.EXPECT().UpdateStatus(ctx, int64(404), entity.OrderStatusShipped).Return(domainerrors.ErrOrderNotFound)

		_, err := fx.service.UpdateOrderStatus(ctx, 404, entity.OrderStatusShipped)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_GenerateOrderLabel(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Order{ID: 3}, nil)
	fx.qrCode.EXPECT().GenerateOrderLabel(int64(3)).Return(png, nil)

	label, err := fx.service.GenerateOrderLabel(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, png, label)
}

func TestOrderService_GenerateOrderLabel_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, domainerrors.ErrOrderNotFound)

	label, err := fx.service.GenerateOrderLabel(ctx, 3)

	assert.Nil(t, label)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
