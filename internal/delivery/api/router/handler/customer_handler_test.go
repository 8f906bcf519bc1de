package handler

import (
	"net/http"
	"testing"
	"time"

	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	mockUC "dncommerce/internal/mocks/usecase"
	"dncommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerTestServer(t *testing.T) (*echo.Echo, *mockUC.MockCustomerUsecase) {
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/customers", h.CreateCustomer)
	e.GET("/api/customers", h.ListCustomers)
	e.GET("/api/customers/email/:email", h.GetCustomerByEmail)
	e.GET("/api/customers/:id", h.GetCustomer)
	e.PUT("/api/customers/:id", h.UpdateCustomer)
	e.DELETE("/api/customers/:id", h.DeleteCustomer)

	return e, customerUC
}

const validCustomerBody = `{
	"name": "Maria Silva",
	"email": "maria@example.com",
	"cpf": "123.456.789-00",
	"phone": "(11) 99999-9999",
	"birthDate": "1990-05-15",
	"address": "Rua A, 1"
}`

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, customerUC := newCustomerTestServer(t)

		wantBirth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
		customerUC.EXPECT().
			CreateCustomer(mock.Anything, mock.MatchedBy(func(input *usecase.CreateCustomerInput) bool {
				return input.Email == "maria@example.com" && input.BirthDate.Equal(wantBirth)
			})).
			Return(&entity.Customer{ID: 1, Name: "Maria Silva"}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/customers", validCustomerBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"cpf without mask", `{"name":"Maria","email":"m@example.com","cpf":"12345678900","phone":"(11) 99999-9999","birthDate":"1990-05-15","address":"Rua A"}`, "cpf"},
		{"bad phone", `{"name":"Maria","email":"m@example.com","cpf":"123.456.789-00","phone":"11999999999","birthDate":"1990-05-15","address":"Rua A"}`, "phone"},
		{"bad birth date", `{"name":"Maria","email":"m@example.com","cpf":"123.456.789-00","phone":"(11) 99999-9999","birthDate":"15/05/1990","address":"Rua A"}`, "birthDate"},
		{"bad email", `{"name":"Maria","email":"maria","cpf":"123.456.789-00","phone":"(11) 99999-9999","birthDate":"1990-05-15","address":"Rua A"}`, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newCustomerTestServer(t)

			rec := doRequest(e, http.MethodPost, "/api/customers", tt.body)

			body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
			assert.Contains(t, string(body.Details), `"field":"`+tt.field+`"`)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		e, customerUC := newCustomerTestServer(t)

		customerUC.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrDuplicateEmail).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/customers", validCustomerBody)

		body := requireError(t, rec, http.StatusConflict, "DUPLICATE_ENTRY")
		assert.Equal(t, "Email já cadastrado", body.Message)
	})
}

func TestCustomerHandler_GetCustomerByEmail(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().GetCustomerByEmail(mock.Anything, "maria@example.com").
		Return(&entity.Customer{ID: 1, Email: "maria@example.com"}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/customers/email/maria@example.com", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().
		UpdateCustomer(mock.Anything, int64(1), mock.MatchedBy(func(update *entity.CustomerUpdate) bool {
			return update.Phone != nil && *update.Phone == "(21) 3333-4444" &&
				update.BirthDate != nil && update.BirthDate.Year() == 1985 &&
				update.Name == nil
		})).
		Return(&entity.Customer{ID: 1}, nil).
		Once()

	rec := doRequest(e, http.MethodPut, "/api/customers/1", `{"phone":"(21) 3333-4444","birthDate":"1985-01-31"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	t.Run("customer with orders", func(t *testing.T) {
		e, customerUC := newCustomerTestServer(t)

		customerUC.EXPECT().DeleteCustomer(mock.Anything, int64(1)).
			Return(domainerrors.ErrCustomerHasOrders.WithDetails(map[string]any{"orders": 2})).
			Once()

		rec := doRequest(e, http.MethodDelete, "/api/customers/1", "")

		body := requireError(t, rec, http.StatusConflict, "REFERENTIAL_CONFLICT")
		assert.JSONEq(t, `{"orders":2}`, string(body.Details))
	})

	t.Run("success", func(t *testing.T) {
		e, customerUC := newCustomerTestServer(t)

		customerUC.EXPECT().DeleteCustomer(mock.Anything, int64(1)).Return(nil).Once()

		rec := doRequest(e, http.MethodDelete, "/api/customers/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
