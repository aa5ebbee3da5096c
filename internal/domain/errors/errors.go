// Package errors defines the application error taxonomy exposed to callers.
package errors

import (
	"net/http"

	"gamehub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Purchase failure taxonomy. These four kinds are the machine-checkable
// outcomes of the purchase orchestrator; every other failure is folded into
// one of them before leaving the use case layer.
var (
	// ErrInvalidReference: unknown user or game. A client error, not a server fault.
	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"Invalid user or game",
		"",
	)

	// ErrAlreadyOwned: the user already purchased this game. An idempotent
	// rejection; safe to retry, nothing was written.
	ErrAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"ALREADY_OWNED",
		"You already purchased this game",
		"",
	)

	// ErrPersistenceFailure: a storage fault; the purchase was not applied
	// and the caller may retry.
	ErrPersistenceFailure = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILURE",
		"Purchase failed. Please try again",
		"",
	)

	// ErrCodeSpaceExhausted: the activation code generator exceeded its retry
	// budget. Operational; should alert, not silently degrade.
	ErrCodeSpaceExhausted = NewBaseError(
		http.StatusInternalServerError,
		"CODE_SPACE_EXHAUSTED",
		"Could not issue an activation code",
		"",
	)
)

// Catalog and library errors
var (
	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"Game not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrLibraryEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"LIBRARY_ENTRY_NOT_FOUND",
		"Library entry not found",
		"",
	)

	ErrAlreadyInLibrary = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_LIBRARY",
		"Game is already in your library",
		"",
	)

	ErrCannotRemoveOwned = NewBaseError(
		http.StatusConflict,
		"CANNOT_REMOVE_OWNED",
		"Cannot remove purchased games",
		"",
	)

	ErrLibraryOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"LIBRARY_OWNERSHIP_VIOLATION",
		"You do not have access to this library entry",
		"",
	)
)

// Discount administration errors
var (
	ErrDiscountNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_NOT_FOUND",
		"Discount not found",
		"",
	)

	ErrDiscountNameTaken = NewBaseError(
		http.StatusConflict,
		"DISCOUNT_NAME_TAKEN",
		"A discount with this name already exists",
		"",
	)

	ErrInvalidDiscountPercent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT_PERCENT",
		"Discount percent must be between 0 and 100",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
