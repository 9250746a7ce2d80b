// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// ErrorKind categorizes lowering errors.
type ErrorKind uint8

const (
	// ErrUnsupportedFeature indicates a legal IR shape this stage
	// intentionally does not implement yet. Recoverable at the module
	// boundary (report, or substitute a stub shader).
	ErrUnsupportedFeature ErrorKind = iota

	// ErrMissingBinding indicates a descriptor index that was never
	// registered in the binding tables. A defect upstream.
	ErrMissingBinding

	// ErrInvariantViolation indicates IR that breaks this stage's
	// preconditions. A defect upstream, never a user-facing diagnostic.
	ErrInvariantViolation
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedFeature:
		return "UnsupportedFeature"
	case ErrMissingBinding:
		return "MissingBinding"
	case ErrInvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Error represents a lowering error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("glsl %s: %s", e.Kind, e.Message)
}

// NewError creates a new lowering error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// IsUnsupportedFeature returns true if the error is ErrUnsupportedFeature.
func (e *Error) IsUnsupportedFeature() bool {
	return e.Kind == ErrUnsupportedFeature
}

// IsInvariantViolation returns true for the invariant class of errors:
// malformed IR or an unregistered binding.
func (e *Error) IsInvariantViolation() bool {
	return e.Kind == ErrMissingBinding || e.Kind == ErrInvariantViolation
}

// unsupportedf builds an ErrUnsupportedFeature error.
func unsupportedf(format string, args ...any) *Error {
	return NewError(ErrUnsupportedFeature, fmt.Sprintf(format, args...))
}

// invariantf builds an ErrInvariantViolation error.
func invariantf(format string, args ...any) *Error {
	return NewError(ErrInvariantViolation, fmt.Sprintf(format, args...))
}
