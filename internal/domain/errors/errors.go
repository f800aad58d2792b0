package errors

import (
	"net/http"

	"truefans/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Retryable() bool   // Whether the caller may retry the same request
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	retryable bool
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Retryable reports whether the failure is transient
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// Is matches errors sharing the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		retryable: e.retryable,
	}
}

func newRetryableError(httpCode int, errorCode, message string) *BaseError {
	err := NewBaseError(httpCode, errorCode, message, "")
	err.retryable = true

	return err
}

// Predefined error types
var (
	// Pass-related errors
	ErrPassNotFound = NewBaseError(
		http.StatusNotFound,
		"PASS_NOT_FOUND",
		"Digital pass not found",
		"",
	)

	// ErrPassInvalid covers every failed redemption condition. It deliberately
	// carries no hint about which condition failed.
	ErrPassInvalid = NewBaseError(
		http.StatusNotFound,
		"INVALID_PASS",
		"Invalid or expired digital pass",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Pass status cannot be changed this way",
		"",
	)

	ErrInvalidCounters = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COUNTERS",
		"Points and visits must be non-negative",
		"",
	)

	ErrPassIDConflict = NewBaseError(
		http.StatusInternalServerError,
		"PASS_ID_CONFLICT",
		"Failed to issue digital pass",
		"",
	)

	ErrPassPackagingFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASS_PACKAGING_FAILED",
		"Failed to generate digital pass",
		"",
	)

	// Restaurant-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrRadiusTooLarge = NewBaseError(
		http.StatusBadRequest,
		"RADIUS_TOO_LARGE",
		"Search radius exceeds the allowed maximum",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Upstream-related errors
	ErrUpstreamUnavailable = newRetryableError(
		http.StatusServiceUnavailable,
		"UPSTREAM_UNAVAILABLE",
		"A dependent service is unavailable, please retry",
	)

	ErrStoreTimeout = newRetryableError(
		http.StatusServiceUnavailable,
		"STORE_TIMEOUT",
		"The pass store did not respond in time, please retry",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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

// Retryable reports whether the failure is transient
func (e *DatabaseExecuteError) Retryable() bool {
	return false
}
