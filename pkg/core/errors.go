package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidResponse   = errors.New("invalid response")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DocumentError represents a failure to read or decode a request or
// response document.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document error: %v", e.Err)
	}
	return fmt.Sprintf("document error in %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
