package errs

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

type Kind string

const (
	KindInputValidation  Kind = "input_validation"
	KindBusinessRule     Kind = "business_rule"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindResourceNotFound Kind = "resource_not_found"
	KindConflict         Kind = "conflict"
	KindDatabaseFailure  Kind = "database_failure"
	KindOperationFailed  Kind = "operation_failed"
)

// AppError carries an error kind so the HTTP layer can pick the status code
// without inspecting message strings.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindInputValidation, KindBusinessRule:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindResourceNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func InputValidationError(msg string) *AppError {
	return newError(KindInputValidation, msg)
}

func BusinessRuleError(msg string) *AppError {
	return newError(KindBusinessRule, msg)
}

func UnauthorizedError(msg string) *AppError {
	return newError(KindUnauthorized, msg)
}

func ForbiddenError(msg string) *AppError {
	return newError(KindForbidden, msg)
}

func ResourceNotFoundError(msg string) *AppError {
	return newError(KindResourceNotFound, msg)
}

func ConflictError(msg string) *AppError {
	return newError(KindConflict, msg)
}

func DatabaseFailureError(msg string) *AppError {
	return newError(KindDatabaseFailure, msg)
}

func OperationFailedError(msg string) *AppError {
	return newError(KindOperationFailed, msg)
}

// HandleDBError translates driver errors into AppErrors. Constraint
// violations map to conflicts; everything else is a database failure.
func HandleDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ConflictError("record already exists")
		case "23503": // foreign_key_violation
			return ConflictError("referenced record does not exist")
		}
	}
	return DatabaseFailureError(err.Error())
}
