package config

import (
	"errors"
	"fmt"

	"github.com/dshills/modal/internal/config/loader"
)

// ErrInvalidValue indicates a setting holds a value outside its domain.
var ErrInvalidValue = errors.New("invalid setting value")

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}
