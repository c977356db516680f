package model

import (
	"errors"
	"fmt"
)

// ErrInvalidProblem indicates that a problem could not be constructed from the given fields.
var ErrInvalidProblem = errors.New("invalid problem")

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidProblem, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidProblem, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidProblem }
