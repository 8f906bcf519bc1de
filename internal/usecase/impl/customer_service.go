package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minCustomerNameLength = 2
	maxCustomerNameLength = 255
)

var fieldValidator = validator.New()

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	now          func() time.Time
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCustomer registers a new customer. Email and CPF must be unused.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:      strings.TrimSpace(input.Name),
		Email:     normalizeEmail(input.Email),
		CPF:       input.CPF,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
		Address:   strings.TrimSpace(input.Address),
	}

	if err := srv.validateCustomer(customer); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer created", slog.Int64("customerID", customer.ID))

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// GetCustomerByEmail retrieves a customer by email
func (srv *customerService) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return customer, nil
}

// ListCustomers lists all customers, most recent first
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// UpdateCustomer applies a partial update
func (srv *customerService) UpdateCustomer(ctx context.Context, id int64, update *entity.CustomerUpdate) (*entity.Customer, error) {
	if err := srv.validateCustomerUpdate(update); err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.Update(ctx, id, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	srv.log(ctx).Info("Customer updated", slog.Int64("customerID", id))

	return customer, nil
}

// DeleteCustomer removes a customer. Customers with orders are kept.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := srv.customerRepo.FindByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to find customer")
	}

	orders, err := srv.customerRepo.CountOrders(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count customer orders")
	}
	if orders > 0 {
		srv.log(ctx).Warn("Refusing to delete customer with orders", slog.Int64("customerID", id), slog.Int64("orders", orders))

		return domainerrors.ErrCustomerHasOrders.WithDetails(map[string]int64{"orders": orders})
	}

	// The orders FK still guards against an order placed in between.
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Info("Customer deleted", slog.Int64("customerID", id))

	return nil
}

func (srv *customerService) validateCustomer(customer *entity.Customer) error {
	length := utf8.RuneCountInString(customer.Name)
	if length < minCustomerNameLength || length > maxCustomerNameLength {
		return domainerrors.NewValidationError("Nome deve ter entre 2 e 255 caracteres", map[string]string{"field": "name"})
	}
	if err := validateEmail(customer.Email); err != nil {
		return err
	}
	if !entity.IsValidCPF(customer.CPF) {
		return domainerrors.NewValidationError("CPF deve estar no formato XXX.XXX.XXX-XX", map[string]string{"field": "cpf"})
	}
	if !entity.IsValidPhone(customer.Phone) {
		return domainerrors.NewValidationError("Telefone deve estar no formato (XX) XXXXX-XXXX ou (XX) XXXX-XXXX", map[string]string{"field": "phone"})
	}
	if customer.Address == "" {
		return domainerrors.NewValidationError("Endereço é obrigatório", map[string]string{"field": "address"})
	}

	return srv.validateBirthDate(customer.BirthDate)
}

func (srv *customerService) validateCustomerUpdate(update *entity.CustomerUpdate) error {
	if update == nil {
		return nil
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		length := utf8.RuneCountInString(name)
		if length < minCustomerNameLength || length > maxCustomerNameLength {
			return domainerrors.NewValidationError("Nome deve ter entre 2 e 255 caracteres", map[string]string{"field": "name"})
		}
		update.Name = &name
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if err := validateEmail(email); err != nil {
			return err
		}
		update.Email = &email
	}
	if update.CPF != nil && !entity.IsValidCPF(*update.CPF) {
		return domainerrors.NewValidationError("CPF deve estar no formato XXX.XXX.XXX-XX", map[string]string{"field": "cpf"})
	}
	if update.Phone != nil && !entity.IsValidPhone(*update.Phone) {
		return domainerrors.NewValidationError("Telefone deve estar no formato (XX) XXXXX-XXXX ou (XX) XXXX-XXXX", map[string]string{"field": "phone"})
	}
	if update.BirthDate != nil {
		return srv.validateBirthDate(*update.BirthDate)
	}

	return nil
}

func (srv *customerService) validateBirthDate(birthDate time.Time) error {
	now := srv.now()
	if birthDate.IsZero() {
		return domainerrors.NewValidationError("Data de nascimento é obrigatória", map[string]string{"field": "birthDate"})
	}
	if birthDate.After(now) {
		return domainerrors.NewValidationError("Data de nascimento não pode ser no futuro", map[string]string{"field": "birthDate"})
	}
	if !entity.IsOldEnough(birthDate, now) {
		return domainerrors.NewValidationError("Cliente deve ter pelo menos 16 anos", map[string]string{"field": "birthDate"})
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if err := fieldValidator.Var(email, "required,email"); err != nil {
		return domainerrors.NewValidationError("Por favor, forneça um email válido (exemplo: usuario@dominio.com)", map[string]string{"field": "email"})
	}

	return nil
}
