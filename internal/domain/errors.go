package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Validation kinds. Every kind is reported through a *ValidationError,
// so errors.Is matches both the kind and ErrValidation.
var (
	ErrInvalidTitle   = errors.New("invalid title")
	ErrInvalidContent = errors.New("invalid content")
	ErrTooManyTags    = errors.New("too many tags")
	ErrInvalidCursor  = errors.New("invalid cursor")
	ErrInvalidLimit   = errors.New("invalid limit")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
	// Kind is one of the validation kinds above; nil for generic field errors.
	Kind error
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes ErrValidation and the kind of every field error.
func (e *ValidationError) Unwrap() []error {
	errs := []error{ErrValidation}
	for _, fe := range e.Errors {
		if fe.Kind != nil {
			errs = append(errs, fe.Kind)
		}
	}
	return errs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewKindError creates a single-field ValidationError tagged with a kind.
func NewKindError(kind error, field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message, Kind: kind}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
