// Package apperr defines the error taxonomy reported by the taskboard core:
// validation failures, missing records, category name collisions, and
// underlying store failures.
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes an application error.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindDuplicate
	KindStore
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is a categorized application error, optionally wrapping a cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a validation error from a format string.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found error for the given resource and id.
func NotFound(resource string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", resource, id)}
}

// Duplicate builds a duplicate error for a colliding name.
func Duplicate(resource, name string) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("%s %q already exists", resource, name)}
}

// Store wraps an underlying persistence failure.
func Store(op string, err error) *Error {
	return &Error{Kind: KindStore, Message: op, Err: err}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, defaulting to KindStore for errors that
// did not originate in this taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}
