package domain

import "strings"

// ValidationError carries field-level validation messages. Fields preserves
// the order in which fields first failed.
type ValidationError struct {
	Fields   []string
	Messages map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Messages: make(map[string][]string)}
}

// Add records a message against a field.
func (v *ValidationError) Add(field, message string) {
	if _, ok := v.Messages[field]; !ok {
		v.Fields = append(v.Fields, field)
	}
	v.Messages[field] = append(v.Messages[field], message)
}

// OrNil returns the error if any message was added, otherwise nil.
func (v *ValidationError) OrNil() error {
	if len(v.Messages) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	var parts []string
	for _, field := range v.Fields {
		parts = append(parts, field+": "+strings.Join(v.Messages[field], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
