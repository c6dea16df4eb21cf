// Package tasklist defines the TaskList aggregate: a titled collection of
// tasks whose progress is derived from the tasks it owns.
package tasklist

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
)

// TaskList is a named collection of tasks. Tasks is nil when the collection
// has not been loaded, which is distinct from an empty collection.
type TaskList struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tasks       []task.Task
	Created     time.Time
	Updated     time.Time
}

// ValidateCandidate checks a client-supplied list before creation.
func (l *TaskList) ValidateCandidate() error {
	fields := make(map[string]string)

	if l.ID != uuid.Nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(l.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Touch refreshes Updated. It never moves the timestamp backwards.
func (l *TaskList) Touch(now time.Time) {
	if now.After(l.Updated) {
		l.Updated = now
	}
}

// Count returns the number of loaded tasks, 0 when not loaded.
func (l *TaskList) Count() int {
	return len(l.Tasks)
}

// Progress is shorthand for Progress(l.Tasks).
func (l *TaskList) Progress() *float64 {
	return Progress(l.Tasks)
}
