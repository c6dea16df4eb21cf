package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
)

// Patch is a partial update for a Task. Nil fields leave the stored value
// untouched. The owning list cannot be patched.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
	Status      *Status
}

// Validate checks the fields that are present.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		fields["title"] = domain.MsgMustNotBeEmpty
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *p.Priority)
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the patch into t: present overwrites, absent preserves.
func (p *Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// IsEmpty reports whether the patch carries no fields.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Status == nil
}
