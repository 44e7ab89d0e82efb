package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is by the HTTP layer.
var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrEntitlementExhausted = errors.New("entitlement exhausted")
	ErrPaymentIntegrity     = errors.New("payment integrity failure")
)

// AppError carries a user-safe message alongside the sentinel kind.
// Field-level detail stays server-side in logs.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Unauthenticated(message string) *AppError {
	return &AppError{Err: ErrUnauthenticated, Message: message}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// EntitlementExhausted signals the caller must purchase credits to continue.
// Handlers surface it as 403 with an explicit upgrade hint, never a generic
// failure.
func EntitlementExhausted() *AppError {
	return &AppError{
		Err:     ErrEntitlementExhausted,
		Message: "no credits remaining, please upgrade",
	}
}

func PaymentIntegrity(message string) *AppError {
	return &AppError{Err: ErrPaymentIntegrity, Message: message}
}
