package models

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds. Every failure returned to an HTTP client is one of these, or a *ValidationError.
var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAlreadyExists          = errors.New("already exists")
)

// Error attaches a client-facing message to one of the error kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewNotFoundError returns an ErrNotFound with the given message.
func NewNotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewForbiddenError returns an ErrForbidden with the given message.
func NewForbiddenError(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// NewUnauthorizedError returns an ErrAuthenticationRequired with the given message.
func NewUnauthorizedError(message string) error {
	return &Error{Kind: ErrAuthenticationRequired, Message: message}
}

// ValidationError reports malformed, missing or conflicting input.
// Fields maps a JSON field name to its problem; Message is used for errors not tied to one field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	if e.Message != "" {
		return e.Message + " (" + strings.Join(parts, "; ") + ")"
	}
	return strings.Join(parts, "; ")
}

// NewValidationError returns a validation error that is not tied to a field.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldError returns a validation error for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
