// Package errors provides application-level error types and utilities.
// It defines the error taxonomy of the order/payment flow: validation,
// not found, forbidden, payment gateway, storage, and unreconcilable-event
// errors, each carrying the HTTP status it maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeForbidden  ErrorType = "forbidden"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeInternal   ErrorType = "internal_error"
	ErrorTypeBadRequest ErrorType = "bad_request"

	// ErrorTypePaymentGateway marks failed or timed-out calls to the payment
	// provider. Surfaced as a generic 500 so the provider retries.
	ErrorTypePaymentGateway ErrorType = "payment_gateway_error"
	// ErrorTypeStorage marks persistence failures, including unrecognized
	// stored values detected on read.
	ErrorTypeStorage ErrorType = "storage_error"
	// ErrorTypeUnreconcilable marks notifications whose correlation key
	// matches no known order. Mapped to 404, distinct from no-op acks.
	ErrorTypeUnreconcilable ErrorType = "unreconcilable_event"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewPaymentGatewayError creates an error for failed provider calls. Details
// are logged, never returned to clients.
func NewPaymentGatewayError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePaymentGateway, http.StatusInternalServerError, message, details)
}

// NewStorageError creates an error for persistence failures.
func NewStorageError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeStorage, http.StatusInternalServerError, message, details)
}

// NewUnreconcilableError creates an error for notifications that reference
// an unknown order.
func NewUnreconcilableError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnreconcilable, http.StatusNotFound, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsPaymentGatewayError checks if the error is a payment gateway error
func IsPaymentGatewayError(err error) bool {
	return isType(err, ErrorTypePaymentGateway)
}

// IsStorageError checks if the error is a storage error
func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

// IsUnreconcilableError checks if the error is an unreconcilable event error
func IsUnreconcilableError(err error) bool {
	return isType(err, ErrorTypeUnreconcilable)
}
