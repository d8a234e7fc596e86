// Package errors defines the user-facing error taxonomy of the core
// operations. Every error here is recoverable: handlers surface the
// message and prior state stays untouched.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an application error
type Code string

const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeForbidden        Code = "FORBIDDEN"
	CodeConflict         Code = "CONFLICT"
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeInvalidState     Code = "INVALID_STATE"
	CodePolicyViolation  Code = "POLICY_VIOLATION"
	CodeValidation       Code = "VALIDATION"
	CodeInternal         Code = "INTERNAL"
)

// AppError is a classified, user-facing error
type AppError struct {
	Code    Code
	Message string
	// Remaining carries the live remaining-seat count for
	// CodeCapacityExceeded so callers can build a useful message.
	Remaining int
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing entity
func NotFound(entity string) *AppError {
	return &AppError{Code: CodeNotFound, Message: entity + " not found"}
}

// Forbidden reports an authorization violation
func Forbidden(msg string) *AppError {
	return &AppError{Code: CodeForbidden, Message: msg}
}

// Conflict reports a uniqueness violation
func Conflict(msg string) *AppError {
	return &AppError{Code: CodeConflict, Message: msg}
}

// CapacityExceeded reports a seat overrun with the actual remaining count
func CapacityExceeded(remaining int) *AppError {
	return &AppError{
		Code:      CodeCapacityExceeded,
		Message:   fmt.Sprintf("only %d seats available", remaining),
		Remaining: remaining,
	}
}

// InvalidState reports an operation not valid for the current status
func InvalidState(msg string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: msg}
}

// PolicyViolation reports a broken time-window or policy rule
func PolicyViolation(msg string) *AppError {
	return &AppError{Code: CodePolicyViolation, Message: msg}
}

// Validation reports malformed input
func Validation(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg}
}

// Internal wraps an unexpected failure from a collaborator
func Internal(msg string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: msg, Err: err}
}

// CodeOf extracts the classification of err, or CodeInternal for
// unclassified errors anywhere in the chain.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// As unwraps err into an *AppError when one is present in the chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
