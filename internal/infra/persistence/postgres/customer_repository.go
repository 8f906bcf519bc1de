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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return translateError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.RegisteredAt = customerM.RegisteredAt

	return nil
}

// FindByID retrieves a customer by ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a customer by email.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *customerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, translateError(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// List lists all customers, most recently registered first.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Order("registered_at DESC").
		Order("id DESC").
		Find(&customerModels).Error; err != nil {
		return nil, translateError(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Update applies the non-nil fields of update.
func (repo *customerRepository) Update(ctx context.Context, id int64, update *entity.CustomerUpdate) (*entity.Customer, error) {
	updates := customerUpdates(update)
	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.CustomerModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, translateError(result.Error, "failed to update customer")
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrCustomerNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete physically removes a customer. Orders referencing it block the delete.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})
	if result.Error != nil {
		if _, ok := isForeignKeyConstraintViolation(result.Error); ok {
			return domainerrors.ErrCustomerHasOrders
		}

		return translateError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// CountOrders counts the orders placed by a customer.
func (repo *customerRepository) CountOrders(ctx context.Context, id int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, translateError(err, "failed to count customer orders")
	}

	return count, nil
}

func customerUpdates(update *entity.CustomerUpdate) map[string]any {
	updates := make(map[string]any)
	if update == nil {
		return updates
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.CPF != nil {
		updates["cpf"] = *update.CPF
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.BirthDate != nil {
		updates["birth_date"] = *update.BirthDate
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}

	return updates
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		CPF:          data.CPF,
		Phone:        data.Phone,
		BirthDate:    data.BirthDate,
		Address:      data.Address,
		RegisteredAt: data.RegisteredAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		CPF:          data.CPF,
		Phone:        data.Phone,
		BirthDate:    data.BirthDate,
		Address:      data.Address,
		RegisteredAt: data.RegisteredAt,
	}
}
