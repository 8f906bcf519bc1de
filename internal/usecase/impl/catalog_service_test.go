package impl

import (
	"context"
	"testing"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockRepo "dncommerce/internal/mocks/repository"
	mockSvc "dncommerce/internal/mocks/service"
	"dncommerce/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	cache       *mockSvc.MockProductCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := mockSvc.NewMockProductCache(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Cache:       cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
		cache:       cache,
	}
}

func TestCatalogService_CreateProduct_CreatesInventory(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		Name:        "  Batom Matte Vermelho ",
		Description: "Batom de longa duração",
		Price:       decimal.RequireFromString("29.999"),
		Category:    entity.CategoryMakeup,
		Brand:       "Vult",
	}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		inventoryRepo := mockRepo.NewMockInventoryRepository(t)

		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().InventoryRepo().Return(inventoryRepo)

		productRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				product.ID = 11
			}).
			Return(nil)
		inventoryRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(record *entity.InventoryRecord) bool {
				return record.ProductID == 11 &&
					record.AvailableQuantity == 0 &&
					record.MinimumQuantity == 5 &&
					record.Location == "Estoque Principal"
			})).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, "Batom Matte Vermelho", product.Name)
	assert.Equal(t, "30.00", product.Price.StringFixed(2))
	assert.True(t, product.Active)
	assert.Equal(t, 0, product.AvailableQuantity)
	assert.Equal(t, 5, product.MinimumQuantity)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	valid := func() *usecase.CreateProductInput {
		return &usecase.CreateProductInput{
			Name:     "Perfume Floral",
			Price:    decimal.RequireFromString("120.00"),
			Category: entity.CategoryPerfume,
		}
	}

	tests := []struct {
		name   string
		mutate func(input *usecase.CreateProductInput)
	}{
		{"zero price", func(in *usecase.CreateProductInput) { in.Price = decimal.Zero }},
		{"negative price", func(in *usecase.CreateProductInput) { in.Price = decimal.RequireFromString("-1") }},
		{"rounds to zero", func(in *usecase.CreateProductInput) { in.Price = decimal.RequireFromString("0.001") }},
		{"price above limit", func(in *usecase.CreateProductInput) { in.Price = decimal.RequireFromString("1000000.00") }},
		{"short name", func(in *usecase.CreateProductInput) { in.Name = "A" }},
		{"unknown category", func(in *usecase.CreateProductInput) { in.Category = "Eletrônicos" }},
		{"long brand", func(in *usecase.CreateProductInput) { in.Brand = string(make([]byte, 101)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			input := valid()
			tt.mutate(input)

			product, err := fx.service.CreateProduct(context.Background(), input)

			assert.Nil(t, product)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_CreateProduct_DuplicateName(t *testing.T) {
	fx := createTestCatalogService(t)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrDuplicateProductName)
	})

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     "Perfume Floral",
		Price:    decimal.RequireFromString("120.00"),
		Category: entity.CategoryPerfume,
	})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateEntry)
	assert.Equal(t, domainerrors.KindDuplicate, domainerrors.KindOf(err))
}

func TestCatalogService_GetProduct_Cache(t *testing.T) {
	ctx := context.Background()
	product := &entity.ProductWithStock{Product: entity.Product{ID: 3, Name: "Sérum"}, AvailableQuantity: 4}

	t.Run("hit", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.cache.EXPECT().Get(ctx, int64(3)).Return(product, true)

		got, err := fx.service.GetProduct(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("miss fills cache", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.cache.EXPECT().Get(ctx, int64(3)).Return(nil, false)
		fx.productRepo.EXPECT().FindActiveWithStock(ctx, int64(3)).Return(product, nil)
		fx.cache.EXPECT().Set(ctx, product).Return()

		got, err := fx.service.GetProduct(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.cache.EXPECT().Get(ctx, int64(3)).Return(nil, false)
		fx.productRepo.EXPECT().FindActiveWithStock(ctx, int64(3)).Return(nil, domainerrors.ErrProductNotFound)

		got, err := fx.service.GetProduct(ctx, 3)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_ListProductsByCategory_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListProductsByCategory(context.Background(), entity.Category("Eletrônicos"))

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_InvalidatesCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	update := &entity.ProductUpdate{
		Price:  ptr(decimal.RequireFromString("45.5")),
		Active: ptr(true),
	}
	updated := &entity.Product{ID: 3, Price: decimal.RequireFromString("45.50"), Active: true}

	fx.productRepo.EXPECT().Update(ctx, int64(3), update).Return(updated, nil)
	fx.cache.EXPECT().Invalidate(ctx, int64(3)).Return()

	product, err := fx.service.UpdateProduct(ctx, 3, update)

	require.NoError(t, err)
	assert.True(t, product.Active)
}

func TestCatalogService_UpdateProduct_InvalidPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.UpdateProduct(context.Background(), 3, &entity.ProductUpdate{
		Price: ptr(decimal.Zero),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeleteProduct_Idempotent(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Deactivate(ctx, int64(3)).Return(nil).Times(2)
	fx.cache.EXPECT().Invalidate(ctx, int64(3)).Return().Times(2)

	require.NoError(t, fx.service.DeleteProduct(ctx, 3))
	require.NoError(t, fx.service.DeleteProduct(ctx, 3))
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Deactivate(ctx, int64(404)).Return(domainerrors.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
