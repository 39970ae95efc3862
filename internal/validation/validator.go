// Package validation checks user-supplied input before it reaches the
// project tree. Validators return structured validation errors; they
// never mutate state.
package validation

import (
	"strings"

	"project-tracker/internal/errors"
)

// requireNonBlank rejects empty or whitespace-only values.
func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(field+" cannot be empty", nil).
			WithContext("field", field)
	}
	return nil
}

// requireMaxLength rejects values longer than max characters.
func requireMaxLength(field, value string, max int) error {
	if len(value) > max {
		return errors.NewValidationError(field+" is too long", nil).
			WithContext("field", field).
			WithContext("max_length", max)
	}
	return nil
}
