// Package errors provides typed errors for hello-ci
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrIO indicates a file system error
	ErrIO
	// ErrDetection indicates that no CI system was detected where one was required
	ErrDetection
)

// CICDError is the base error type for all hello-ci errors
type CICDError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *CICDError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *CICDError) Unwrap() error {
	return e.Cause
}

// New creates a new CICDError
func New(errType ErrorType, message string, cause error) *CICDError {
	return &CICDError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *CICDError) WithContext(key string, value interface{}) *CICDError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var cicdErr *CICDError
	if err == nil {
		return false
	}
	if errors.As(err, &cicdErr) {
		return cicdErr.Type == errType
	}
	return false
}

// ShouldBlockCI returns true if the error should fail the calling pipeline step
func ShouldBlockCI(err error) bool {
	var cicdErr *CICDError
	if !errors.As(err, &cicdErr) {
		return false
	}

	switch cicdErr.Type {
	case ErrConfig, ErrValidation, ErrIO:
		return true
	case ErrDetection:
		// Only raised under --fail-unknown
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrIO:
		return "IO"
	case ErrDetection:
		return "DETECTION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *CICDError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *CICDError {
	return New(ErrValidation, message, cause)
}

// IOError creates a file system error
func IOError(message string, cause error) *CICDError {
	return New(ErrIO, message, cause)
}

// DetectionError creates a detection error
func DetectionError(message string) *CICDError {
	return New(ErrDetection, message, nil)
}
