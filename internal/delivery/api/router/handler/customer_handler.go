package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dncommerce/internal/delivery/api/response"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerRequest represents the request body for registering a customer
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Email     string `json:"email" validate:"required,email"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Phone     string `json:"phone" validate:"required,phone_br"`
	BirthDate string `json:"birthDate" validate:"required,date_ymd"`
	Address   string `json:"address" validate:"required"`
}

// UpdateCustomerRequest represents the request body for a partial customer update
type UpdateCustomerRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	CPF       *string `json:"cpf" validate:"omitempty,cpf"`
	Phone     *string `json:"phone" validate:"omitempty,phone_br"`
	BirthDate *string `json:"birthDate" validate:"omitempty,date_ymd"`
	Address   *string `json:"address" validate:"omitempty,min=1"`
}

// CreateCustomer handles customer registration
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// date_ymd already guarantees the layout.
	birthDate, _ := time.Parse(entity.BirthDateLayout, req.BirthDate)

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), &usecase.CreateCustomerInput{
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Address:   req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Cliente cadastrado com sucesso", customer)
}

// ListCustomers handles listing customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, customers)
}

// GetCustomer handles retrieving a customer by ID
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// GetCustomerByEmail handles retrieving a customer by email
func (h *CustomerHandler) GetCustomerByEmail(c echo.Context) error {
	customer, err := h.customerUC.GetCustomerByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// UpdateCustomer handles partial customer updates
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	update := &entity.CustomerUpdate{
		Name:    req.Name,
		Email:   req.Email,
		CPF:     req.CPF,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse(entity.BirthDateLayout, *req.BirthDate)
		update.BirthDate = &birthDate
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Cliente atualizado com sucesso", customer)
}

// DeleteCustomer handles removing a customer without orders
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Cliente removido com sucesso", map[string]any{"id": id})
}
