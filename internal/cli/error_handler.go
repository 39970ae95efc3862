package cli

import (
	"fmt"

	"project-tracker/internal/errors"
	"project-tracker/internal/logging"
)

// ErrorHandler converts application errors into user-facing messages.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps an error with the operation that failed, using the
// user-friendly message for structured errors. The full error is only
// visible in debug mode.
func (h *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	logging.Debugf("%s: %v\n", operation, err)

	if appErr, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s: %s", operation, errors.GetUserMessage(appErr))
	}
	return fmt.Errorf("%s: %w", operation, err)
}
