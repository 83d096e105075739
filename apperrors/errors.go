// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an error for the caller
type ErrorType string

const (
	// ErrorTypeInvalidArgument means the caller sent bad input. Retrying
	// the same request cannot succeed.
	ErrorTypeInvalidArgument ErrorType = "INVALID_ARGUMENT"

	// ErrorTypeInternal means the store or another dependency failed
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the error type returned by the feedback service
type AppError struct {
	Type    ErrorType
	Field   string // offending input field, if any
	Message string // safe to show to callers
	Err     error  // underlying cause, for logs only
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidArgument creates an error naming the offending field
func NewInvalidArgument(field, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidArgument,
		Field:   field,
		Message: message,
	}
}

// NewInternalError wraps a store or dependency failure
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the classification of err. Errors that are not
// AppErrors are treated as internal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsInvalidArgument reports whether err was caused by bad input
func IsInvalidArgument(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeInvalidArgument
}
