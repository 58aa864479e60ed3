package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is always wrapped by a *ValidationError carrying the details.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedInput is returned when a request body could not be
	// parsed as a JSON object at all.
	ErrMalformedInput = errors.New("malformed input")
)

// ValidationError describes a single violated field or cross-field rule.
// Message is human readable and safe to return to API clients.
type ValidationError struct {
	// Field is the JSON name of the offending field, or the entity name
	// for rules that span several fields.
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
// A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func requiredError(field string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("%s is required.", field), nil)
}

func typeError(field, kind string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("%s must be a valid %s.", field, kind), nil)
}

func rangeError(field string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("%s must be >= 1", field), nil)
}
