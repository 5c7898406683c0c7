package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique constraint violation).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeForbidden indicates the caller lacks the required role.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping for errors.Is/As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// Internal creates a new Internal error wrapping a cause.
func Internal(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Cause: cause}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the AppError code of err, or ErrCodeInternal when err is
// not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}
