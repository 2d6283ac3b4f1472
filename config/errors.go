package config

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is wrapped by every error Validate returns.
var ErrValidationFailed = errors.New("validation failed")

// ParseError is returned when a config file is not valid TOML or carries
// keys this editor does not know.
type ParseError struct {
	// Path is the file that failed to parse, "<bytes>" for Parse.
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrValidationFailed, field, fmt.Sprintf(format, args...))
}
