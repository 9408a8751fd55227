// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the lazyres library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNilBuilder      = fmt.Errorf("builder is nil")
	ErrRegistryClosed  = fmt.Errorf("registry is closed")
	ErrExecutorClosed  = fmt.Errorf("executor is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ConstructionError is the single failure kind an accessor can surface.
// It is raised by the one-time build and then replayed verbatim to every
// subsequent caller; the recipe is fixed, so retrying cannot succeed.
type ConstructionError struct {
	Name  string // accessor name, empty if unnamed
	Cause error  // the builder's original error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("resource construction failed: %v", e.Cause)
	}
	return fmt.Sprintf("resource %q construction failed: %v", e.Name, e.Cause)
}

// Unwrap exposes the builder's error for errors.Is/As chains.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeConstruction
	ErrCodeInvalidArgument
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context. It is the
// error shape for misuse of the control/facade surfaces, where the caller
// benefits from a code and key/value context rather than a bare sentinel.
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
