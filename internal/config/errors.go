package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates the value fails validation.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError describes a rejected setting.
type ValidationError struct {
	// Path is the setting path, e.g. "editor.tab_width".
	Path string
	// Message describes the problem.
	Message string
	// Value is the rejected value.
	Value any
	// Err is ErrTypeMismatch or ErrValidationFailed.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func mismatch(path, want string, value any) error {
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %T", want, value),
		Value:   value,
		Err:     ErrTypeMismatch,
	}
}

func invalid(path, msg string, value any) error {
	return &ValidationError{Path: path, Message: msg, Value: value, Err: ErrValidationFailed}
}
