package model

import "fmt"

// ValidationError reports a field that failed a domain rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}
