package serializer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates bad serialization options.
	ErrInvalidConfig = errors.New("invalid serializer configuration")
	// ErrFieldNotFound indicates a lookup of a name that is not a top-level field.
	ErrFieldNotFound = errors.New("field not found")
	// ErrNilProblem is returned when a nil problem is passed in.
	ErrNilProblem = errors.New("nil problem")
)

// ConfigurationError reports an unusable serialization option.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Option, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfig }

// FieldNotFoundError reports a field name that a Problem does not have.
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q", ErrFieldNotFound, e.Name)
}

func (e *FieldNotFoundError) Unwrap() error { return ErrFieldNotFound }
