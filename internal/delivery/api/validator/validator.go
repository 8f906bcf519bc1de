// Package validator adapts go-playground/validator to echo and registers the shop's field rules.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"dncommerce/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the cpf, phone_br, category, order_status and date_ymd tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(validate, "cpf", func(fl validator.FieldLevel) bool {
		return entity.IsValidCPF(fl.Field().String())
	})
	mustRegister(validate, "phone_br", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	})
	mustRegister(validate, "category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "date_ymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: validate}
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "failed to register validation %q", tag))
	}
}

// Validate validates a request struct.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FormatValidationError turns validator errors into per-field messages.
// Errors of any other type yield nil.
func FormatValidationError(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fieldPath(fieldErr),
			Message: message(fieldErr),
		})
	}

	return fields
}

// fieldPath drops the top-level struct name from the namespace, e.g. items[0].quantity.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return fieldErr.Field()
}

func message(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", field, fieldErr.Param())
		}
		if fieldErr.Kind() == reflect.Slice {
			return fmt.Sprintf("%s deve ter no mínimo %s item(ns)", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s deve ser no mínimo %s", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s deve ser no máximo %s", field, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "cpf":
		return "CPF deve estar no formato XXX.XXX.XXX-XX"
	case "phone_br":
		return "Telefone deve estar no formato (XX) XXXXX-XXXX ou (XX) XXXX-XXXX"
	case "category":
		return fmt.Sprintf("Categoria inválida. Use: %s", joinCategories())
	case "order_status":
		return "Status inválido. Use: pendente, processando, enviado, entregue, cancelado"
	case "date_ymd":
		return fmt.Sprintf("%s deve estar no formato YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s é inválido", field)
	}
}

func joinCategories() string {
	names := make([]string, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		names = append(names, category.String())
	}

	return strings.Join(names, ", ")
}
