package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level validation errors so a submit
// failure reports everything wrong at once.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the field names in report order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewMissingFieldsError builds the submit-blocking error from the validator's
// ordered label list.
func NewMissingFieldsError(labels []string) *ValidationError {
	errs := make([]FieldError, len(labels))
	for i, label := range labels {
		errs[i] = FieldError{Field: label, Message: "required"}
	}
	return &ValidationError{Errors: errs}
}

// MissingFieldsMessage renders the one-pass user-facing report, e.g.
// "Please fill in the following fields: Name, Clarity, Finish".
func MissingFieldsMessage(labels []string) string {
	return "Please fill in the following fields: " + strings.Join(labels, ", ")
}
