package postgres

import (
	"context"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const tracerName = "dncommerce/persistence"

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db     *gorm.DB
	tracer trace.Tracer
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db:     db,
		tracer: otel.Tracer(tracerName),
	}
}

// inventoryRow is the scan target of inventory reads joined with products.
type inventoryRow struct {
	model.InventoryModel
	ProductName     string
	ProductCategory string
	ProductBrand    string
}

// stockRow is the scan target of the order pricing snapshot.
type stockRow struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Active    bool
	Available int
}

const inventoryColumns = "inventory.*, " +
	"products.name AS product_name, " +
	"products.category AS product_category, " +
	"products.brand AS product_brand"

func (repo *inventoryRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Select(inventoryColumns).
		Joins("JOIN products ON products.id = inventory.product_id")
}

// Create persists the inventory record of a product.
func (repo *inventoryRepository) Create(ctx context.Context, record *entity.InventoryRecord) error {
	recordM := fromInventoryDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return translateError(err, "failed to create inventory record")
	}

	record.ID = recordM.ID
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByProductID retrieves the record of an active product.
func (repo *inventoryRepository) FindByProductID(ctx context.Context, productID int64) (*entity.InventoryRecord, error) {
	var row inventoryRow

	result := repo.joined(ctx).
		Where("inventory.product_id = ? AND products.active = ?", productID, true).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to find inventory record")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrInventoryNotFound
	}

	return toInventoryDomain(&row), nil
}

// FindByProductIDs retrieves the records of the given products, active or not.
func (repo *inventoryRepository) FindByProductIDs(ctx context.Context, productIDs []int64) ([]*entity.InventoryRecord, error) {
	if len(productIDs) == 0 {
		return []*entity.InventoryRecord{}, nil
	}

	var rows []*inventoryRow
	if err := repo.joined(ctx).
		Where("inventory.product_id IN ?", productIDs).
		Order("inventory.available_quantity ASC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to find inventory records")
	}

	return toInventoriesDomain(rows), nil
}

// List lists the records of active products ordered by product name.
func (repo *inventoryRepository) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	var rows []*inventoryRow

	if err := repo.joined(ctx).
		Where("products.active = ?", true).
		Order("products.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list inventory")
	}

	return toInventoriesDomain(rows), nil
}

// ListLowStock lists active-product records at or below their minimum, lowest first.
func (repo *inventoryRepository) ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	var rows []*inventoryRow

	if err := repo.joined(ctx).
		Where("products.active = ? AND inventory.available_quantity <= inventory.minimum_quantity", true).
		Order("inventory.available_quantity ASC").
		Order("products.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list low stock")
	}

	return toInventoriesDomain(rows), nil
}

// Reserve decrements available in one conditional UPDATE, so concurrent
// reservations can never drive the quantity below zero.
func (repo *inventoryRepository) Reserve(ctx context.Context, productID int64, quantity int) (err error) {
	ctx, span := repo.tracer.Start(ctx, "inventory.reserve", trace.WithAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("inventory.quantity", quantity),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ? AND available_quantity >= ?", productID, quantity).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity - ?", quantity),
			"updated_at":         gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to reserve stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: either the record is missing or stock is short.
	var current model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrInventoryNotFound
		}

		return translateError(err, "failed to read inventory after reservation")
	}

	return domainerrors.NewInsufficientStockError(productID, current.AvailableQuantity, quantity)
}

// Restock increments available by quantity.
func (repo *inventoryRepository) Restock(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity + ?", quantity),
			"updated_at":         gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to restock")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInventoryNotFound
	}

	return nil
}

// Adjust overwrites the non-nil fields of adjustment.
func (repo *inventoryRepository) Adjust(ctx context.Context, productID int64, adjustment *entity.InventoryAdjustment) error {
	updates := map[string]any{
		"updated_at": gorm.Expr("NOW()"),
	}
	if adjustment != nil {
		if adjustment.AvailableQuantity != nil {
			if *adjustment.AvailableQuantity < 0 {
				return domainerrors.ErrInvalidQuantity
			}
			updates["available_quantity"] = *adjustment.AvailableQuantity
		}
		if adjustment.MinimumQuantity != nil {
			if *adjustment.MinimumQuantity < 0 {
				return domainerrors.ErrInvalidQuantity
			}
			updates["minimum_quantity"] = *adjustment.MinimumQuantity
		}
		if adjustment.Location != nil {
			updates["location"] = *adjustment.Location
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error, "failed to adjust inventory")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInventoryNotFound
	}

	return nil
}

// SnapshotForProducts reads price, active flag and availability of the given products in one query.
func (repo *inventoryRepository) SnapshotForProducts(ctx context.Context, productIDs []int64) (map[int64]*entity.ProductStock, error) {
	snapshot := make(map[int64]*entity.ProductStock, len(productIDs))
	if len(productIDs) == 0 {
		return snapshot, nil
	}

	var rows []*stockRow
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("products.id AS product_id, products.name, products.price, products.active, " +
			"COALESCE(inventory.available_quantity, 0) AS available").
		Joins("LEFT JOIN inventory ON inventory.product_id = products.id").
		Where("products.id IN ?", productIDs).
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to read stock snapshot")
	}

	for _, row := range rows {
		snapshot[row.ProductID] = &entity.ProductStock{
			ProductID: row.ProductID,
			Name:      row.Name,
			Price:     row.Price,
			Active:    row.Active,
			Available: row.Available,
		}
	}

	return snapshot, nil
}

func toInventoryDomain(row *inventoryRow) *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ID:                row.ID,
		ProductID:         row.ProductID,
		AvailableQuantity: row.AvailableQuantity,
		MinimumQuantity:   row.MinimumQuantity,
		Location:          row.Location,
		UpdatedAt:         row.UpdatedAt,
		ProductName:       row.ProductName,
		ProductCategory:   entity.Category(row.ProductCategory),
		ProductBrand:      row.ProductBrand,
	}
}

func toInventoriesDomain(rows []*inventoryRow) []*entity.InventoryRecord {
	records := make([]*entity.InventoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toInventoryDomain(row))
	}

	return records
}

func fromInventoryDomain(data *entity.InventoryRecord) *model.InventoryModel {
	return &model.InventoryModel{
		ID:                data.ID,
		ProductID:         data.ProductID,
		AvailableQuantity: data.AvailableQuantity,
		MinimumQuantity:   data.MinimumQuantity,
		Location:          data.Location,
		UpdatedAt:         data.UpdatedAt,
	}
}
