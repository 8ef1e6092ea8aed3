package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport-layer mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

// Error is the common error type returned across the domain boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the error message.
func (e *Error) Error() string { return e.Message }

// NewValidationError creates an error for invalid caller input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// NewUnauthorizedError creates an error for a failed authenticity check.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewForbiddenError creates an error for a disallowed operation.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewConflictError creates an error for a conflicting state change.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the ErrorKind of err, or false if err is not a domain Error.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
