package postgres

import (
	"context"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// orderRow is the scan target of order reads joined with customers.
type orderRow struct {
	model.OrderModel
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ItemCount     int
}

const orderColumns = "orders.*, " +
	"customers.name AS customer_name, " +
	"customers.email AS customer_email, " +
	"customers.phone AS customer_phone, " +
	"(SELECT COUNT(*) FROM order_lines WHERE order_lines.order_id = orders.id) AS item_count"

func (repo *orderRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(orderColumns).
		Joins("JOIN customers ON customers.id = orders.customer_id")
}

// Create persists an order header.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if _, ok := isForeignKeyConstraintViolation(err); ok {
			return domainerrors.ErrCustomerNotFound
		}

		return translateError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order with customer contact fields and item count.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var row orderRow

	result := repo.joined(ctx).
		Where("orders.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to find order")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrOrderNotFound
	}

	return toOrderDomain(&row), nil
}

// List lists all orders newest first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var rows []*orderRow

	if err := repo.joined(ctx).
		Order("orders.created_at DESC").
		Order("orders.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list orders")
	}

	return toOrdersDomain(rows), nil
}

// ListByCustomer lists the orders of a customer newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var rows []*orderRow

	if err := repo.joined(ctx).
		Where("orders.customer_id = ?", customerID).
		Order("orders.created_at DESC").
		Order("orders.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list customer orders")
	}

	return toOrdersDomain(rows), nil
}

// UpdateStatus sets the status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return translateError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(row *orderRow) *entity.Order {
	return &entity.Order{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		Total:           row.Total,
		DeliveryAddress: row.DeliveryAddress,
		PaymentMethod:   row.PaymentMethod,
		Status:          entity.OrderStatus(row.Status),
		CreatedAt:       row.CreatedAt,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		CustomerPhone:   row.CustomerPhone,
		ItemCount:       row.ItemCount,
	}
}

func toOrdersDomain(rows []*orderRow) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		Total:           data.Total.Round(2),
		DeliveryAddress: data.DeliveryAddress,
		PaymentMethod:   data.PaymentMethod,
		Status:          data.Status.String(),
		CreatedAt:       data.CreatedAt,
	}
}
