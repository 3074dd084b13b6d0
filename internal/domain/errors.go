package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested document was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates the backing document store could not be reached.
	ErrUnavailable = errors.New("document store unavailable")
)

// ValidationError reports a required or malformed field, detected before
// any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Required is the common "empty after trim" validation failure.
func Required(field string) error {
	return Invalid(field, "required")
}
