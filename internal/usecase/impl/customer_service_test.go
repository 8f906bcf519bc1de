package impl

import (
	"context"
	"testing"
	"time"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockRepo "dncommerce/internal/mocks/repository"
	"dncommerce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

var customerTestNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Logger:       newDiscardLogger(),
	})
	service.(*customerService).now = func() time.Time { return customerTestNow }

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func validCustomerInput() *usecase.CreateCustomerInput {
	return &usecase.CreateCustomerInput{
		Name:      "Maria Silva",
		Email:     " Maria.Silva@Email.com ",
		CPF:       "123.456.789-00",
		Phone:     "(11) 99999-9999",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Address:   "Rua das Flores, 123",
	}
}

func TestCustomerService_CreateCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = 1
		}).
		Return(nil)

	customer, err := fx.service.CreateCustomer(ctx, validCustomerInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "maria.silva@email.com", customer.Email)
}

func TestCustomerService_CreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.CreateCustomerInput)
	}{
		{"invalid email", func(in *usecase.CreateCustomerInput) { in.Email = "maria@" }},
		{"unformatted cpf", func(in *usecase.CreateCustomerInput) { in.CPF = "12345678900" }},
		{"invalid phone", func(in *usecase.CreateCustomerInput) { in.Phone = "11999999999" }},
		{"future birth date", func(in *usecase.CreateCustomerInput) { in.BirthDate = customerTestNow.AddDate(0, 0, 1) }},
		{"younger than sixteen", func(in *usecase.CreateCustomerInput) { in.BirthDate = customerTestNow.AddDate(-16, 0, 1) }},
		{"missing birth date", func(in *usecase.CreateCustomerInput) { in.BirthDate = time.Time{} }},
		{"short name", func(in *usecase.CreateCustomerInput) { in.Name = "M" }},
		{"missing address", func(in *usecase.CreateCustomerInput) { in.Address = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t)

			input := validCustomerInput()
			tt.mutate(input)

			customer, err := fx.service.CreateCustomer(context.Background(), input)

			assert.Nil(t, customer)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCustomerService_CreateCustomer_ExactlySixteen(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()
	input.BirthDate = customerTestNow.AddDate(-16, 0, 0)

	fx.customerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CreateCustomer(ctx, input)

	require.NoError(t, err)
}

func TestCustomerService_CreateCustomer_DuplicateEmail(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrDuplicateEmail)

	_, err := fx.service.CreateCustomer(ctx, validCustomerInput())

	require.ErrorIs(t, err, domainerrors.ErrDuplicateEntry)
	assert.Equal(t, domainerrors.KindDuplicate, domainerrors.KindOf(err))
}

func TestCustomerService_GetCustomerByEmail_Normalizes(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "maria@email.com").
		Return(&entity.Customer{ID: 1, Email: "maria@email.com"}, nil)

	customer, err := fx.service.GetCustomerByEmail(ctx, "MARIA@email.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	update := &entity.CustomerUpdate{Email: ptr("Nova@Email.com")}

	fx.customerRepo.EXPECT().
		Update(ctx, int64(1), mock.MatchedBy(func(u *entity.CustomerUpdate) bool {
			return u.Email != nil && *u.Email == "nova@email.com"
		})).
		Return(&entity.Customer{ID: 1, Email: "nova@email.com"}, nil)

	customer, err := fx.service.UpdateCustomer(ctx, 1, update)

	require.NoError(t, err)
	assert.Equal(t, "nova@email.com", customer.Email)
}

func TestCustomerService_UpdateCustomer_InvalidCPF(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.UpdateCustomer(context.Background(), 1, &entity.CustomerUpdate{CPF: ptr("123")})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_DeleteCustomer_WithOrdersIsBlocked(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1}, nil)
	fx.customerRepo.EXPECT().CountOrders(ctx, int64(1)).Return(int64(2), nil)

	err := fx.service.DeleteCustomer(ctx, 1)

	require.ErrorIs(t, err, domainerrors.ErrReferentialConflict)
	assert.Equal(t, domainerrors.KindReferentialConflict, domainerrors.KindOf(err))
	fx.customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerService_DeleteCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1}, nil)
	fx.customerRepo.EXPECT().CountOrders(ctx, int64(1)).Return(int64(0), nil)
	fx.customerRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)

	require.NoError(t, fx.service.DeleteCustomer(ctx, 1))
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, domainerrors.ErrCustomerNotFound)

	err := fx.service.DeleteCustomer(ctx, 9)

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
