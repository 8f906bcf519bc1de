package postgres

import (
	"context"

	domainerrors "dncommerce/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateNotNullViolation    = "23502"
	sqlStateQueryCanceled       = "57014"
	sqlStateNumericOutOfRange   = "22003"
	sqlStateSerialization       = "40001"
	sqlStateDeadlockDetected    = "40P01"
)

// Unique constraints and the conflict they surface as.
var uniqueConstraintErrors = map[string]*domainerrors.BaseError{
	"products_name_key":        domainerrors.ErrDuplicateProductName,
	"customers_email_key":      domainerrors.ErrDuplicateEmail,
	"customers_cpf_key":        domainerrors.ErrDuplicateCPF,
	"inventory_product_id_key": domainerrors.ErrDuplicateEntry.WithDetails(map[string]string{"field": "productId"}),
}

// constraintOf returns the PostgreSQL error of an integrity violation.
func constraintOf(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}

	switch pgErr.Code {
	case sqlStateUniqueViolation, sqlStateForeignKeyViolation, sqlStateCheckViolation, sqlStateNotNullViolation:
		return pgErr, true
	default:
		return nil, false
	}
}

func isUniqueConstraintViolation(err error) (string, bool) {
	if pgErr, ok := constraintOf(err); ok && pgErr.Code == sqlStateUniqueViolation {
		return pgErr.ConstraintName, true
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) (string, bool) {
	if pgErr, ok := constraintOf(err); ok && pgErr.Code == sqlStateForeignKeyViolation {
		return pgErr.ConstraintName, true
	}

	return "", errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) (string, bool) {
	if pgErr, ok := constraintOf(err); ok && (pgErr.Code == sqlStateCheckViolation || pgErr.Code == sqlStateNotNullViolation) {
		return pgErr.ConstraintName, true
	}

	return "", errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isTimeout reports whether the store gave up because the request deadline passed,
// including a wait for a pooled connection that never became free.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == sqlStateQueryCanceled
}

// pgCode returns the SQLSTATE of err, or "" when err did not come from PostgreSQL.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// translateError maps a driver error to the domain error taxonomy.
func translateError(err error, details string) error {
	if err == nil {
		return nil
	}

	if isTimeout(err) {
		return domainerrors.ErrStoreTimeout.WithDetails(details)
	}
	if constraint, ok := isUniqueConstraintViolation(err); ok {
		if mapped, known := uniqueConstraintErrors[constraint]; known {
			return mapped
		}

		return domainerrors.ErrDuplicateEntry.WithDetails(map[string]string{"constraint": constraint})
	}
	if constraint, ok := isForeignKeyConstraintViolation(err); ok {
		return domainerrors.ErrReferentialConflict.WithDetails(map[string]string{"constraint": constraint})
	}
	if constraint, ok := isCheckConstraintViolation(err); ok {
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string{"constraint": constraint})
	}

	switch pgCode(err) {
	case sqlStateNumericOutOfRange:
		return domainerrors.NewValidationError("Valor numérico fora do intervalo permitido", map[string]string{"reason": "numeric_out_of_range"})
	case sqlStateSerialization, sqlStateDeadlockDetected:
		// The whole transaction was rolled back and can be retried.
		return domainerrors.ErrStoreTimeout.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
