package validation

// TaskValidator validates task input.
type TaskValidator struct {
	textMaxLength int
}

// NewTaskValidator creates a TaskValidator with the given limits.
func NewTaskValidator(textMaxLength int) *TaskValidator {
	return &TaskValidator{
		textMaxLength: textMaxLength,
	}
}

// ValidateText checks the task text for creation or edit.
func (v *TaskValidator) ValidateText(text string) error {
	if err := requireNonBlank("task text", text); err != nil {
		return err
	}
	return requireMaxLength("task text", text, v.textMaxLength)
}
