package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Shared validation messages.
const (
	MsgRequired       = "is required"
	MsgMustNotBeEmpty = "must not be empty"
	MsgMustNotBeSet   = "must not be set on create"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Every invalid-argument condition in the service (client-supplied id on create,
// blank title, unknown parent list, malformed input) is reported through this type.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError carrying a single field message.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error renders fields in sorted order so messages are stable across runs.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sep := "; "
		if i == 0 {
			sep = ": "
		}
		b.WriteString(sep + field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
