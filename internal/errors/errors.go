// Package errors provides structured error types for wordsift with
// category codes and contextual metadata, so command-level handlers can
// distinguish configuration mistakes from I/O failures.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// SiftError is a structured error type with context.
type SiftError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
	Path    string
}

// Error implements the error interface.
func (e *SiftError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *SiftError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *SiftError) Is(target error) bool {
	var t *SiftError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithPath attaches the file path the error relates to.
func (e *SiftError) WithPath(path string) *SiftError {
	e.Path = path
	return e
}

// WithContext attaches a contextual key/value pair.
func (e *SiftError) WithContext(key string, value interface{}) *SiftError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewIOError creates an I/O error wrapping cause.
func NewIOError(code, message string, cause error) *SiftError {
	return &SiftError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *SiftError {
	return &SiftError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error wrapping cause.
func NewConfigError(code, message string, cause error) *SiftError {
	return &SiftError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error wrapping cause.
func NewInternalError(code, message string, cause error) *SiftError {
	return &SiftError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is a SiftError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var se *SiftError
	if errors.As(err, &se) {
		return se.Type == errorType
	}
	return false
}
