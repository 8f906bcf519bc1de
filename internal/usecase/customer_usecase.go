package usecase

import (
	"context"
	"time"

	"dncommerce/internal/domain/entity"
)

// CreateCustomerInput represents the data required to register a customer
type CreateCustomerInput struct {
	Name      string
	Email     string
	CPF       string
	Phone     string
	BirthDate time.Time
	Address   string
}

// CustomerUsecase defines the interface for customer management use cases
type CustomerUsecase interface {
	// CreateCustomer registers a new customer
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves a customer by ID
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// GetCustomerByEmail retrieves a customer by email
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ListCustomers lists all customers, most recent first
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// UpdateCustomer applies a partial update
	UpdateCustomer(ctx context.Context, id int64, update *entity.CustomerUpdate) (*entity.Customer, error)

	// DeleteCustomer removes a customer that has no orders
	DeleteCustomer(ctx context.Context, id int64) error
}
