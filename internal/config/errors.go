package config

import (
	"errors"
	"fmt"

	"github.com/dshills/keycore/internal/config/loader"
)

// ErrInvalidValue is matched by every *FieldError.
var ErrInvalidValue = errors.New("invalid configuration value")

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// FieldError reports a setting whose value is well-formed but unusable.
type FieldError struct {
	// Path is the dot-separated setting path, e.g. "editor.poll_interval".
	Path string
	// Value is the rejected value.
	Value any
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Path, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrInvalidValue.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidValue
}
