// Package errors provides domain-specific error types for gorm-postgres-enforcer.
package errors

import (
	"errors"
	"fmt"
)

// AppError is a structured application error with an error code and the
// process exit status the error maps to.
type AppError struct {
	// Code is a machine-readable error code (e.g., "SCAN_ROOT_INVALID").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// ExitCode is the process exit status for this failure class.
	ExitCode int `json:"-"`

	// Err is the wrapped underlying error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
	}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, code, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// IsAppError checks if an error is an AppError and returns it.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ExitStatus maps an error to the process exit code. nil maps to ExitOK,
// an AppError to its ExitCode, and anything else to ExitFatal.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr.ExitCode
	}
	return ExitFatal
}
