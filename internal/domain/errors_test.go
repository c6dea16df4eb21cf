package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"title": MsgRequired,
		"id":    MsgMustNotBeSet,
	}}

	want := "validation error: id: must not be set on create; title: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("creating task: %w", NewValidationError("title", MsgRequired))

	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(wrapped, ErrValidation) = false, want true")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Errorf("errors.Is(wrapped, ErrNotFound) = true, want false")
	}

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatalf("errors.As(wrapped, *ValidationError) = false")
	}
	if verr.Fields["title"] != MsgRequired {
		t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], MsgRequired)
	}
}
