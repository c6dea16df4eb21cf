package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

const msgInvalidTimestamp = "must be an RFC 3339 timestamp"

// localTimestamp is the zone-less form accepted for dueDate, read as UTC.
const localTimestamp = "2006-01-02T15:04:05"

var errInvalidTimestamp = errors.New(msgInvalidTimestamp)

// ParseTimestamp accepts RFC 3339 (with or without fractional seconds) and
// the zone-less local form. The result is always UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(localTimestamp, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, errInvalidTimestamp)
}

// CreateTaskListRequest represents the JSON body for creating a task list.
// ID is accepted so that the service can reject it.
type CreateTaskListRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
}

// Validate rejects any supplied id, the zero UUID included, and a blank
// title.
func (r *CreateTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if r.ID != nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain copies the request into a candidate TaskList.
func (r *CreateTaskListRequest) ToDomain() *tasklist.TaskList {
	l := &tasklist.TaskList{
		Title:       r.Title,
		Description: deref(r.Description),
	}
	if r.ID != nil {
		l.ID = *r.ID
	}
	return l
}

// UpdateTaskListRequest represents the JSON body for patching a task list.
// Nil and null fields are left unchanged.
type UpdateTaskListRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate rejects a present but blank title.
func (r *UpdateTaskListRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return domain.NewValidationError("title", domain.MsgMustNotBeEmpty)
	}
	return nil
}

// ToPatch converts the request into a tasklist.Patch.
func (r *UpdateTaskListRequest) ToPatch() tasklist.Patch {
	return tasklist.Patch{
		Title:       r.Title,
		Description: r.Description,
	}
}

// CreateTaskRequest represents the JSON body for creating a task. Status is
// accepted but the service always opens new tasks.
type CreateTaskRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// Validate checks the title, due date and enum values, and rejects any
// supplied id, the zero UUID included.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.ID != nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	validateTaskFields(fields, r.DueDate, r.Priority, r.Status)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain copies the request into a candidate Task. Call Validate first;
// an unparsable due date is dropped.
func (r *CreateTaskRequest) ToDomain() *task.Task {
	t := &task.Task{
		Title:       r.Title,
		Description: deref(r.Description),
		DueDate:     parseOptional(r.DueDate),
	}
	if r.ID != nil {
		t.ID = *r.ID
	}
	if r.Priority != nil {
		t.Priority = task.Priority(*r.Priority)
	}
	if r.Status != nil {
		t.Status = task.Status(*r.Status)
	}
	return t
}

// UpdateTaskRequest represents the JSON body for patching a task.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotBeEmpty
	}
	validateTaskFields(fields, r.DueDate, r.Priority, r.Status)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request into a task.Patch.
func (r *UpdateTaskRequest) ToPatch() task.Patch {
	p := task.Patch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     parseOptional(r.DueDate),
	}
	if r.Priority != nil {
		prio := task.Priority(*r.Priority)
		p.Priority = &prio
	}
	if r.Status != nil {
		st := task.Status(*r.Status)
		p.Status = &st
	}
	return p
}

func validateTaskFields(fields map[string]string, dueDate, priority, status *string) {
	if dueDate != nil {
		if _, err := ParseTimestamp(*dueDate); err != nil {
			fields["dueDate"] = msgInvalidTimestamp
		}
	}
	if priority != nil && !task.Priority(*priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *priority)
	}
	if status != nil && !task.Status(*status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *status)
	}
}

func parseOptional(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := ParseTimestamp(*s)
	if err != nil {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
