package validation

import (
	"time"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
)

// ProjectValidator validates project input.
type ProjectValidator struct {
	nameMinLength int
	nameMaxLength int
}

// NewProjectValidator creates a ProjectValidator with the given limits.
func NewProjectValidator(nameMinLength, nameMaxLength int) *ProjectValidator {
	return &ProjectValidator{
		nameMinLength: nameMinLength,
		nameMaxLength: nameMaxLength,
	}
}

// ValidateForCreation checks everything needed to create a project.
func (v *ProjectValidator) ValidateForCreation(name string, status domain.ProjectStatus, priority domain.ProjectPriority) error {
	if err := requireNonBlank("project name", name); err != nil {
		return err
	}
	if len(name) < v.nameMinLength {
		return errors.NewValidationError("project name is too short", nil).
			WithContext("min_length", v.nameMinLength)
	}
	if err := requireMaxLength("project name", name, v.nameMaxLength); err != nil {
		return err
	}
	if !status.IsValid() {
		return errors.NewValidationError("unknown project status", nil).
			WithContext("status", string(status))
	}
	if !priority.IsValid() {
		return errors.NewValidationError("unknown project priority", nil).
			WithContext("priority", string(priority))
	}
	return nil
}

// ValidateDates checks that the planned end does not precede the start.
// Either bound may be nil; a half-open plan is fine.
func (v *ProjectValidator) ValidateDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.NewValidationError("project end date is before its start date", nil)
	}
	return nil
}
