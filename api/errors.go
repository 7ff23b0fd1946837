// File: api/errors.go
// License: Apache-2.0
//
// Common error types and error handling utilities for the asyncfifo module.

package api

import "fmt"

// Gating conditions. Expected and recoverable: the owning domain turns
// them into a skipped tick, they never reach the harness as failures.
var (
	ErrFull  = fmt.Errorf("fifo is full")
	ErrEmpty = fmt.Errorf("fifo is empty")
)

// ErrorCode represents specific error conditions in the module.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeInvariantViolation
	ErrCodeOracleMismatch
	ErrCodeResetProtocol
	ErrCodeInternal
)

// Error is a structured error with code and context. Context carries
// the tick numbers and pointer values of the offending operations.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	if se, ok := err.(*Error); ok {
		return se.Code
	}
	return ErrCodeInternal
}
