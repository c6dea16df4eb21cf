// Package task defines the Task entity: a single actionable item owned by
// exactly one task list.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
)

// Task is a single item within a task list. ListID is fixed at creation.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Status      Status
	ListID      uuid.UUID
	Created     time.Time
	Updated     time.Time
}

// IsClosed reports whether the task counts towards list progress.
func (t *Task) IsClosed() bool {
	return t.Status == StatusClosed
}

// ValidateCandidate checks a client-supplied task before creation. The
// candidate must not carry an identifier and must have a non-blank title.
// An empty priority is allowed (the default is applied later); status is
// ignored because new tasks are always open.
func (t *Task) ValidateCandidate() error {
	fields := make(map[string]string)

	if t.ID != uuid.Nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Touch refreshes Updated. It never moves the timestamp backwards.
func (t *Task) Touch(now time.Time) {
	if now.After(t.Updated) {
		t.Updated = now
	}
}
