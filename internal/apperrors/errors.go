package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrOwnershipMismatch indicates that the supplied owner does not own the account.
var ErrOwnershipMismatch = errors.New("owner does not match account")

// ErrInvalidAmount indicates a non-positive (or otherwise unusable) mutation amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInfrastructure marks failures of collaborators (store unavailable, timeouts).
var ErrInfrastructure = errors.New("infrastructure failure")

// NotFoundError carries the identifier that yielded nothing.
type NotFoundError struct {
	Resource string
	ID       int64
}

// NewNotFoundError returns a NotFoundError for the given resource and id.
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError names the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// OwnershipMismatchError is returned when a balance mutation names the wrong owner.
type OwnershipMismatchError struct {
	AccountID int64
	OwnerID   int64
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("account %d is not owned by %d", e.AccountID, e.OwnerID)
}

func (e *OwnershipMismatchError) Is(target error) bool { return target == ErrOwnershipMismatch }

// InvalidAmountError reports the rejected amount.
type InvalidAmountError struct {
	Amount int64
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s %d: %s", ErrInvalidAmount, e.Amount, e.Reason)
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

// InsufficientFundsError reports the balance a withdrawal was checked against.
type InsufficientFundsError struct {
	AccountID int64
	Balance   int64
	Amount    int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: account %d has balance %d, requested %d", ErrInsufficientFunds, e.AccountID, e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// AppError wraps an infrastructure error with the HTTP status it should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. A nil err is allowed.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool { return target == ErrInfrastructure }

// StatusCode returns the HTTP status for err, defaulting to 500 for unknown errors.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, ErrOwnershipMismatch):
		return http.StatusForbidden
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// Kind returns a short machine-readable name for the error's category.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrOwnershipMismatch):
		return "ownership_mismatch"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "internal_error"
	}
}
