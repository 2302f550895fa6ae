package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so callers can react to the failure
// category without parsing messages.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindDuplicateKey   Kind = "duplicate_key"
	KindValidation     Kind = "validation"
	KindMissingContext Kind = "missing_context"
	KindCorruptData    Kind = "corrupt_data"
	KindUnauthorized   Kind = "unauthorized"
	KindForbidden      Kind = "forbidden"
	KindInternal       Kind = "internal"
)

// AppError represents an application error with a kind and HTTP status code
type AppError struct {
	Kind    Kind         `json:"kind"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Kind: KindNotFound, Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Kind: KindForbidden, Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Code: http.StatusUnauthorized, Message: "Invalid username or password"}
)

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewDuplicateKeyError creates an error for an insert that hit an existing key
func NewDuplicateKeyError(message string) *AppError {
	return &AppError{
		Kind:    KindDuplicateKey,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewValidationError creates a validation error from per-field messages
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewEmptyOrderError reports an attempt to finalize a bill from an empty cart
func NewEmptyOrderError() *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusUnprocessableEntity,
		Message: "Cannot finalize a bill from an empty cart",
	}
}

// NewMissingContextError reports that a required context record (user,
// settings) could not be resolved at bill finalization.
func NewMissingContextError(what string) *AppError {
	return &AppError{
		Kind:    KindMissingContext,
		Code:    http.StatusConflict,
		Message: what + " could not be resolved",
	}
}

// NewCorruptDataError reports stored data that fails to parse. The caller
// must surface this rather than continue with a guessed value.
func NewCorruptDataError(message string) *AppError {
	return &AppError{
		Kind:    KindCorruptData,
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindInternal,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
