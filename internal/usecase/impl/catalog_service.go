// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dncommerce/config"
	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/domain/service"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	minProductNameLength  = 2
	maxProductNameLength  = 255
	maxDescriptionLength  = 1000
	maxBrandLength        = 100
	productPricePrecision = 2
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	productRepo     repository.ProductRepository
	cache           service.ProductCache
	defaultMinimum  int
	defaultLocation string
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:       params.TxManager,
		productRepo:     params.ProductRepo,
		cache:           params.Cache,
		defaultMinimum:  params.Config.Inventory.DefaultMinimum,
		defaultLocation: params.Config.Inventory.DefaultLocation,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct creates a product and its inventory record in one transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.ProductWithStock, error) {
	price, err := validateProductFields(input.Name, input.Description, input.Brand, input.Price, input.Category)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       price,
		Category:    input.Category,
		Brand:       input.Brand,
		Active:      true,
	}
	record := &entity.InventoryRecord{
		AvailableQuantity: 0,
		MinimumQuantity:   srv.defaultMinimum,
		Location:          srv.defaultLocation,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		record.ProductID = product.ID
		if err := repoFactory.InventoryRepo().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create inventory record")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return &entity.ProductWithStock{
		Product:           *product,
		AvailableQuantity: record.AvailableQuantity,
		MinimumQuantity:   record.MinimumQuantity,
		Location:          record.Location,
	}, nil
}

// GetProduct retrieves an active product, served from the cache when present.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.ProductWithStock, error) {
	if product, ok := srv.cache.Get(ctx, id); ok {
		return product, nil
	}

	product, err := srv.productRepo.FindActiveWithStock(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	srv.cache.Set(ctx, product)

	return product, nil
}

// ListProducts lists active products, newest first
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.ProductWithStock, error) {
	products, err := srv.productRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductsByCategory lists active products of a category ordered by name
func (srv *catalogService) ListProductsByCategory(ctx context.Context, category entity.Category) ([]*entity.ProductWithStock, error) {
	if !category.IsValid() {
		return nil, domainerrors.NewValidationError(
			"Categoria inválida",
			map[string]any{"received": category.String(), "accepted": entity.Categories},
		)
	}

	products, err := srv.productRepo.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// UpdateProduct applies a partial update and drops the cached copy.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, update *entity.ProductUpdate) (*entity.Product, error) {
	if err := validateProductUpdate(update); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.Update(ctx, id, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.cache.Invalidate(ctx, id)
	srv.log(ctx).Info("Product updated", slog.Int64("productID", id))

	return product, nil
}

// DeleteProduct deactivates a product and drops the cached copy.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Deactivate(ctx, id); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.cache.Invalidate(ctx, id)
	srv.log(ctx).Info("Product deactivated", slog.Int64("productID", id))

	return nil
}

// validateProductFields checks a complete product and returns the price rounded to cents.
func validateProductFields(name, description, brand string, price decimal.Decimal, category entity.Category) (decimal.Decimal, error) {
	if err := validateProductName(name); err != nil {
		return decimal.Zero, err
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return decimal.Zero, domainerrors.NewValidationError("Descrição deve ter no máximo 1000 caracteres", map[string]string{"field": "description"})
	}
	if utf8.RuneCountInString(brand) > maxBrandLength {
		return decimal.Zero, domainerrors.NewValidationError("Marca deve ter entre 1 e 100 caracteres", map[string]string{"field": "brand"})
	}
	if !category.IsValid() {
		return decimal.Zero, domainerrors.NewValidationError(
			"Categoria inválida",
			map[string]any{"field": "category", "accepted": entity.Categories},
		)
	}

	return validatePrice(price)
}

func validateProductUpdate(update *entity.ProductUpdate) error {
	if update == nil {
		return nil
	}
	if update.Name != nil {
		if err := validateProductName(*update.Name); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}
	if update.Description != nil && utf8.RuneCountInString(*update.Description) > maxDescriptionLength {
		return domainerrors.NewValidationError("Descrição deve ter no máximo 1000 caracteres", map[string]string{"field": "description"})
	}
	if update.Brand != nil && utf8.RuneCountInString(*update.Brand) > maxBrandLength {
		return domainerrors.NewValidationError("Marca deve ter entre 1 e 100 caracteres", map[string]string{"field": "brand"})
	}
	if update.Category != nil && !update.Category.IsValid() {
		return domainerrors.NewValidationError(
			"Categoria inválida",
			map[string]any{"field": "category", "accepted": entity.Categories},
		)
	}
	if update.Price != nil {
		price, err := validatePrice(*update.Price)
		if err != nil {
			return err
		}
		update.Price = &price
	}

	return nil
}

func validateProductName(name string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < minProductNameLength || length > maxProductNameLength {
		return domainerrors.NewValidationError("Nome deve ter entre 2 e 255 caracteres", map[string]string{"field": "name"})
	}

	return nil
}

func validatePrice(price decimal.Decimal) (decimal.Decimal, error) {
	price = price.Round(productPricePrecision)
	if !price.IsPositive() {
		return decimal.Zero, domainerrors.NewValidationError("O preço deve ser um número maior que zero", map[string]string{"field": "price"})
	}
	if price.GreaterThan(entity.MaxProductPrice) {
		return decimal.Zero, domainerrors.NewValidationError("O preço não pode exceder R$ 999.999,99", map[string]string{"field": "price"})
	}

	return price, nil
}
