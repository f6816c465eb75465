package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Fault taxonomy. Soft-misses during extraction are not errors at all; the
// only errors a caller can see are empty input, an unsupported file, an
// unconfigured client, or the upstream analysis call failing.
var (
	ErrEmptyDocument       = errors.New("document stream is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNotConfigured       = errors.New("document analysis client is not configured")
	ErrUpstreamAnalysis    = errors.New("document analysis call failed")
)

// NewAppError builds a coded error with an optional cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError annotates err with a message, preserving the chain.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
