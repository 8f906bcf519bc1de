package postgres

import (
	"context"
	"time"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface over order_lines.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// saleRow is the scan target of ledger reads joined with products, orders and customers.
type saleRow struct {
	model.OrderLineModel
	ProductName     string
	ProductCategory string
	ProductBrand    string
	OrderStatus     string
	OrderedAt       time.Time
	CustomerName    string
}

const saleColumns = "order_lines.*, " +
	"products.name AS product_name, " +
	"products.category AS product_category, " +
	"products.brand AS product_brand, " +
	"orders.status AS order_status, " +
	"orders.created_at AS ordered_at, " +
	"customers.name AS customer_name"

func (repo *saleRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{}).
		Select(saleColumns).
		Joins("JOIN products ON products.id = order_lines.product_id").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Joins("JOIN customers ON customers.id = orders.customer_id")
}

// Create appends a line to the ledger.
func (repo *saleRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	lineM := fromSaleDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if constraint, ok := isForeignKeyConstraintViolation(err); ok {
			if constraint == "order_lines_order_id_fkey" {
				return domainerrors.ErrOrderNotFound
			}

			return domainerrors.ErrProductNotFound
		}

		return translateError(err, "failed to create order line")
	}

	line.ID = lineM.ID
	line.CreatedAt = lineM.CreatedAt

	return nil
}

// FindByID retrieves a line with product and order context.
func (repo *saleRepository) FindByID(ctx context.Context, id int64) (*entity.OrderLine, error) {
	var row saleRow

	result := repo.joined(ctx).
		Where("order_lines.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to find sale")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrSaleNotFound
	}

	return toSaleDomain(&row), nil
}

// List lists every line newest first.
func (repo *saleRepository) List(ctx context.Context) ([]*entity.OrderLine, error) {
	return repo.list(ctx, repo.joined(ctx).
		Order("order_lines.created_at DESC").
		Order("order_lines.id DESC"))
}

// ListByProduct lists the lines of a product newest first.
func (repo *saleRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.OrderLine, error) {
	return repo.list(ctx, repo.joined(ctx).
		Where("order_lines.product_id = ?", productID).
		Order("order_lines.created_at DESC").
		Order("order_lines.id DESC"))
}

// ListByOrder lists the lines of an order in insertion order.
func (repo *saleRepository) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	return repo.list(ctx, repo.joined(ctx).
		Where("order_lines.order_id = ?", orderID).
		Order("order_lines.id ASC"))
}

func (repo *saleRepository) list(_ context.Context, query *gorm.DB) ([]*entity.OrderLine, error) {
	var rows []*saleRow

	if err := query.Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list sales")
	}

	lines := make([]*entity.OrderLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, toSaleDomain(row))
	}

	return lines, nil
}

func toSaleDomain(row *saleRow) *entity.OrderLine {
	return &entity.OrderLine{
		ID:              row.ID,
		OrderID:         row.OrderID,
		ProductID:       row.ProductID,
		Quantity:        row.Quantity,
		UnitPrice:       row.UnitPrice,
		Subtotal:        row.Subtotal,
		CreatedAt:       row.CreatedAt,
		ProductName:     row.ProductName,
		ProductCategory: entity.Category(row.ProductCategory),
		ProductBrand:    row.ProductBrand,
		OrderStatus:     row.OrderStatus,
		OrderedAt:       row.OrderedAt,
		CustomerName:    row.CustomerName,
	}
}

func fromSaleDomain(data *entity.OrderLine) *model.OrderLineModel {
	return &model.OrderLineModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice.Round(2),
		Subtotal:  data.Subtotal.Round(2),
		CreatedAt: data.CreatedAt,
	}
}
