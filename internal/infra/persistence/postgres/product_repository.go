package postgres

import (
	"context"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// productStockRow is the scan target of product reads joined with inventory.
type productStockRow struct {
	model.ProductModel
	AvailableQuantity int
	MinimumQuantity   int
	Location          string
}

const productWithStockColumns = "products.*, " +
	"COALESCE(inventory.available_quantity, 0) AS available_quantity, " +
	"COALESCE(inventory.minimum_quantity, 0) AS minimum_quantity, " +
	"COALESCE(inventory.location, '') AS location"

func (repo *productRepository) withStock(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(productWithStockColumns).
		Joins("LEFT JOIN inventory ON inventory.product_id = products.id")
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// FindByID retrieves a product regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, translateError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindActiveWithStock retrieves an active product joined with its inventory.
func (repo *productRepository) FindActiveWithStock(ctx context.Context, id int64) (*entity.ProductWithStock, error) {
	var row productStockRow

	result := repo.withStock(ctx).
		Where("products.id = ? AND products.active = ?", id, true).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to find product with stock")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	return toProductWithStockDomain(&row), nil
}

// ListActive lists active products, newest first.
func (repo *productRepository) ListActive(ctx context.Context) ([]*entity.ProductWithStock, error) {
	var rows []*productStockRow

	if err := repo.withStock(ctx).
		Where("products.active = ?", true).
		Order("products.created_at DESC").
		Order("products.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list products")
	}

	return toProductsWithStockDomain(rows), nil
}

// ListActiveByCategory lists active products of a category ordered by name.
func (repo *productRepository) ListActiveByCategory(ctx context.Context, category entity.Category) ([]*entity.ProductWithStock, error) {
	var rows []*productStockRow

	if err := repo.withStock(ctx).
		Where("products.active = ? AND products.category = ?", true, category.String()).
		Order("products.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list products by category")
	}

	return toProductsWithStockDomain(rows), nil
}

// Update applies the non-nil fields of update.
func (repo *productRepository) Update(ctx context.Context, id int64, update *entity.ProductUpdate) (*entity.Product, error) {
	updates := productUpdates(update)
	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, translateError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrProductNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Deactivate clears the active flag; repeating it is not an error.
func (repo *productRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return translateError(result.Error, "failed to deactivate product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func productUpdates(update *entity.ProductUpdate) map[string]any {
	updates := make(map[string]any)
	if update == nil {
		return updates
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Price != nil {
		updates["price"] = *update.Price
	}
	if update.Category != nil {
		updates["category"] = update.Category.String()
	}
	if update.Brand != nil {
		updates["brand"] = *update.Brand
	}
	if update.Active != nil {
		updates["active"] = *update.Active
	}

	return updates
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Brand:       data.Brand,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price.Round(2),
		Category:    data.Category.String(),
		Brand:       data.Brand,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}

func toProductWithStockDomain(row *productStockRow) *entity.ProductWithStock {
	return &entity.ProductWithStock{
		Product:           *toProductDomain(&row.ProductModel),
		AvailableQuantity: row.AvailableQuantity,
		MinimumQuantity:   row.MinimumQuantity,
		Location:          row.Location,
	}
}

func toProductsWithStockDomain(rows []*productStockRow) []*entity.ProductWithStock {
	products := make([]*entity.ProductWithStock, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductWithStockDomain(row))
	}

	return products
}
