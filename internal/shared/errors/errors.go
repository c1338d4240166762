// Package errors provides application-level error types and utilities.
// It defines the error taxonomy shared by use cases and HTTP handlers:
// validation, not found, invalid transition, uniqueness exhaustion,
// concurrency conflicts and the generic auth/internal kinds.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeInvalidTransition   ErrorType = "invalid_transition"
	ErrorTypeUniquenessExhausted ErrorType = "uniqueness_exhausted"
	ErrorTypeConcurrencyConflict ErrorType = "concurrency_conflict"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeForbidden           ErrorType = "forbidden"
	ErrorTypeTooManyRequests     ErrorType = "too_many_requests"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeBadRequest          ErrorType = "bad_request"
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

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
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

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInvalidTransitionError reports a status or priority value outside its enumerated set.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidTransition, http.StatusUnprocessableEntity, message, details)
}

// NewUniquenessExhaustedError reports that no free identifier was found within the attempt cap.
func NewUniquenessExhaustedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUniquenessExhausted, http.StatusConflict, message, details)
}

// NewConcurrencyConflictError reports an atomic document or counter write that matched nothing.
func NewConcurrencyConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConcurrencyConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewTooManyRequestsError creates a new rate limit error
func NewTooManyRequestsError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTooManyRequests, http.StatusTooManyRequests, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
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

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return isType(err, ErrorTypeInvalidTransition)
}

// IsUniquenessExhaustedError checks if the error is a uniqueness exhausted error
func IsUniquenessExhaustedError(err error) bool {
	return isType(err, ErrorTypeUniquenessExhausted)
}

// IsConcurrencyConflictError checks if the error is a concurrency conflict error
func IsConcurrencyConflictError(err error) bool {
	return isType(err, ErrorTypeConcurrencyConflict)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
