package errors

import (
	"fmt"
	"net/http"

	"automarket/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business code, so WithDetails copies still match
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
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

// Predefined error types
var (
	// Session-related errors
	ErrMissingCredentials = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIALS",
		"API URL or API Key not set",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"Extension is not connected",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Dashboard session expired, please log in again",
		"",
	)

	// Backend-related errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Backend request failed",
		"",
	)

	ErrUnexpectedStatus = NewBaseError(
		http.StatusBadGateway,
		"UNEXPECTED_STATUS",
		"Backend returned an unexpected status",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No backend order matches this marketplace order",
		"",
	)

	ErrOrderNotPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAID",
		"Order is not paid yet",
		"",
	)

	ErrDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"DELIVERY_FAILED",
		"Delivery request was not accepted",
		"",
	)

	// Page-related errors
	ErrExtractionFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"EXTRACTION_FAILED",
		"Could not extract order information",
		"",
	)

	ErrPageNotSupported = NewBaseError(
		http.StatusBadRequest,
		"PAGE_NOT_SUPPORTED",
		"Page is not a marketplace order page",
		"",
	)

	// Bridge-related errors
	ErrUnknownMessage = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_MESSAGE",
		"Unknown message type",
		"",
	)

	ErrAgentUnreachable = NewBaseError(
		http.StatusServiceUnavailable,
		"AGENT_UNREACHABLE",
		"Background agent is not running",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Storage-related errors
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Local credential store failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StatusError reports a backend response whose status code did not match the expectation
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// NewStatusError creates a backend status error
func NewStatusError(method, path string, statusCode int, body string) AppError {
	return &StatusError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Is makes StatusError match ErrUnexpectedStatus
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// HTTPCode returns the HTTP status code
func (e *StatusError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *StatusError) ErrorCode() string {
	return ErrUnexpectedStatus.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StatusError) Message() string {
	return ErrUnexpectedStatus.Message()
}

// Details returns detailed error information
func (e *StatusError) Details() string {
	return e.Body
}

// IsUnauthorized reports whether the backend rejected the session
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
