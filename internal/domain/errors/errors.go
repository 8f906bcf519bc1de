package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an application error independently of its message.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindDuplicate
	KindReferentialConflict
	KindInsufficientStock
	KindOrderRejected
	KindStoreTimeout
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "Validation"
	case KindDuplicate:
		return "Duplicate"
	case KindReferentialConflict:
		return "ReferentialConflict"
	case KindInsufficientStock:
		return "InsufficientStock"
	case KindOrderRejected:
		return "OrderRejected"
	case KindStoreTimeout:
		return "StoreTimeout"
	default:
		return "Internal"
	}
}

// HTTPCode returns the default HTTP status code of the Kind.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindInsufficientStock, KindOrderRejected:
		return http.StatusBadRequest
	case KindDuplicate, KindReferentialConflict:
		return http.StatusConflict
	case KindStoreTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails or WithMessage still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Not found errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
	)

	ErrCustomerNotFound = NewBaseError(
		KindNotFound,
		"CUSTOMER_NOT_FOUND",
		"Cliente não encontrado",
	)

	ErrInventoryNotFound = NewBaseError(
		KindNotFound,
		"INVENTORY_NOT_FOUND",
		"Registro de estoque não encontrado",
	)

	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		"ORDER_NOT_FOUND",
		"Pedido não encontrado",
	)

	ErrSaleNotFound = NewBaseError(
		KindNotFound,
		"SALE_NOT_FOUND",
		"Venda não encontrada",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_ERROR",
		"Dados inválidos",
	)

	ErrInvalidQuantity = NewBaseError(
		KindValidation,
		"INVALID_QUANTITY",
		"Quantidade deve ser um número inteiro positivo",
	)

	ErrInvalidLineItem = NewBaseError(
		KindValidation,
		"INVALID_LINE_ITEM",
		"Itens do pedido inválidos",
	)

	ErrInvalidOrderStatus = NewBaseError(
		KindValidation,
		"INVALID_STATUS",
		"Status inválido. Use: pendente, processando, enviado, entregue, cancelado",
	)

	ErrInvalidDateRange = NewBaseError(
		KindValidation,
		"INVALID_DATE_RANGE",
		"Período inválido. Use datas no formato YYYY-MM-DD",
	)

	// Conflict errors
	ErrDuplicateEntry = NewBaseError(
		KindDuplicate,
		"DUPLICATE_ENTRY",
		"Registro duplicado",
	)

	ErrDuplicateEmail = ErrDuplicateEntry.WithMessage("Email já cadastrado").WithDetails(map[string]string{"field": "email"})

	ErrDuplicateCPF = ErrDuplicateEntry.WithMessage("CPF já cadastrado").WithDetails(map[string]string{"field": "cpf"})

	ErrDuplicateProductName = ErrDuplicateEntry.WithMessage("Já existe um produto com este nome").WithDetails(map[string]string{"field": "name"})

	ErrReferentialConflict = NewBaseError(
		KindReferentialConflict,
		"REFERENTIAL_CONFLICT",
		"Registro referenciado por outros dados",
	)

	ErrCustomerHasOrders = ErrReferentialConflict.WithMessage("Não é possível excluir cliente com pedidos associados")

	// Infrastructure errors
	ErrStoreTimeout = NewBaseError(
		KindStoreTimeout,
		"STORE_TIMEOUT",
		"Serviço temporariamente indisponível, tente novamente",
	)

	ErrTransactionFailed = NewBaseError(
		KindInternal,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
	)
)

// NewValidationError returns a validation error with a specific message and details.
func NewValidationError(message string, details any) AppError {
	return ErrValidationFailed.WithMessage(message).WithDetails(details)
}

// InsufficientStockError reports a reservation that exceeds the available quantity.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

// NewInsufficientStockError creates an InsufficientStockError
func NewInsufficientStockError(productID int64, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return e.Message()
}

// Kind returns the error classification
func (e *InsufficientStockError) Kind() Kind {
	return KindInsufficientStock
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return KindInsufficientStock.HTTPCode()
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return fmt.Sprintf("Estoque insuficiente. Disponível: %d, Solicitado: %d", e.Available, e.Requested)
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() any {
	return map[string]any{
		"productId": e.ProductID,
		"available": e.Available,
		"requested": e.Requested,
	}
}

// LineFailureReason names why a line of an order was rejected.
type LineFailureReason string

const (
	LineFailureProductNotFound   LineFailureReason = "PRODUCT_NOT_FOUND"
	LineFailureInsufficientStock LineFailureReason = "INSUFFICIENT_STOCK"
)

// LineFailure is one rejected line of an order.
type LineFailure struct {
	ProductID int64             `json:"productId"`
	Reason    LineFailureReason `json:"reason"`
	Message   string            `json:"message"`
	Available *int              `json:"available,omitempty"`
	Requested *int              `json:"requested,omitempty"`
}

// OrderRejectedError aggregates every line failure found while validating an order.
type OrderRejectedError struct {
	Failures []LineFailure
}

// NewOrderRejectedError creates an OrderRejectedError
func NewOrderRejectedError(failures []LineFailure) *OrderRejectedError {
	return &OrderRejectedError{Failures: failures}
}

// Error implements the error interface
func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("order rejected: %d invalid item(s)", len(e.Failures))
}

// Kind returns the error classification
func (e *OrderRejectedError) Kind() Kind {
	return KindOrderRejected
}

// HTTPCode is 404 when every failure is a missing product, otherwise 400.
func (e *OrderRejectedError) HTTPCode() int {
	if len(e.Failures) == 0 {
		return http.StatusBadRequest
	}
	for _, failure := range e.Failures {
		if failure.Reason != LineFailureProductNotFound {
			return http.StatusBadRequest
		}
	}

	return http.StatusNotFound
}

// ErrorCode returns the business error code
func (e *OrderRejectedError) ErrorCode() string {
	return "ORDER_REJECTED"
}

// Message returns the user-friendly error message
func (e *OrderRejectedError) Message() string {
	return "Pedido não pode ser criado: itens inválidos"
}

// Details returns the line failures
func (e *OrderRejectedError) Details() any {
	return e.Failures
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
