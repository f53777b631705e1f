// Package errors provides structured error handling for the khabar backend.
// It defines error types with codes, messages, causes, and contextual
// information so that the REST boundary can map failures to HTTP statuses
// without leaking internal detail to callers.
package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeExternalAPI  ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout      ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to an HTTP status. Infrastructure failures
// collapse to 500 so that internal detail stays in the logs.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// NotFoundError creates an AppError for missing records.
func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Context: context}
}

// UnauthorizedError creates an AppError for failed authentication.
func UnauthorizedError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message, Cause: cause}
}

// ForbiddenError creates an AppError for insufficient privileges.
func ForbiddenError(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// ConflictError creates an AppError for duplicate-record conflicts.
func ConflictError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message, Context: context}
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// ExternalAPIError creates an AppError for external API call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}
		for key, value := range appErr.Context {
			args = append(args, key, value)
		}
		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}
		logger.Error("application error occurred", args...)
		return
	}

	logger.Error("unknown error occurred",
		"operation", operation,
		"error", err.Error(),
	)
}
