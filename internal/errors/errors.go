package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("persistence operation failed: %s", operation),
		Code:    "PERSISTENCE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewSerializationError creates a new serialization error
func NewSerializationError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeSerialization,
		Message: fmt.Sprintf("serialization failed: %s", operation),
		Code:    "SERIALIZATION_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation:
		return appErr.Message
	case ErrorTypeNotFound:
		return appErr.Message
	case ErrorTypePersistence:
		return "a storage error occurred; your changes are kept in memory"
	case ErrorTypeSerialization:
		return "stored data could not be read"
	case ErrorTypeInvalidInput:
		return appErr.Message
	default:
		return appErr.Message
	}
}
