package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrComposition indicates a notification artifact could not be built
	ErrComposition = errors.New("composition failed")

	// ErrDispatch indicates the mail transport rejected or was unreachable
	ErrDispatch = errors.New("dispatch failed")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// CompositionError wraps an artifact build failure
func CompositionError(artifact string, err error) error {
	return fmt.Errorf("%s: %v: %w", artifact, err, ErrComposition)
}

// DispatchError wraps a mail transport failure
func DispatchError(err error) error {
	return fmt.Errorf("%v: %w", err, ErrDispatch)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
