// Package response renders the JSON envelopes of the HTTP API.
package response

import (
	"net/http"
	"strconv"

	deliverycontext "truefans/internal/delivery/context"
	domainerrors "truefans/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is advertised on retryable failures.
const retryAfterSeconds = 1

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`                // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message   string `json:"message"`             // User-friendly error message
	Details   any    `json:"details,omitempty"`   // Additional error context (only for 4xx errors)
	Retryable bool   `json:"retryable,omitempty"` // The same request may succeed later
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Blob streams a binary artifact as an attachment
func Blob(c echo.Context, contentType, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, contentType, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError renders an application error, hiding details of server failures
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := &ErrorInfo{
		Code:      appErr.ErrorCode(),
		Message:   appErr.Message(),
		Retryable: appErr.Retryable(),
	}
	if appErr.HTTPCode() < 500 && appErr.Details() != "" {
		info.Details = appErr.Details()
	}
	if appErr.Retryable() {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}

	return c.JSON(appErr.HTTPCode(), ErrorResponse{
		Error: info,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
