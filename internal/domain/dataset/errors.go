package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingField is the kind returned when a required column is absent.
var ErrMissingField = errors.New("missing field")

// MissingFieldError names the absent column. It matches ErrMissingField
// under errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField, e.Field)
}

// Unwrap exposes the ErrMissingField kind.
func (e *MissingFieldError) Unwrap() error { return ErrMissingField }
