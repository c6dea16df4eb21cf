// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

// TaskListResponse represents a single task list in HTTP responses. Progress
// is null when the list has no tasks.
type TaskListResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Created     string    `json:"created"`
	Updated     string    `json:"updated"`
	Count       int       `json:"count"`
	Progress    *float64  `json:"progress"`
}

// ToTaskListResponse converts a domain TaskList to an HTTP response DTO,
// deriving count and progress from the loaded tasks.
func ToTaskListResponse(l *tasklist.TaskList) TaskListResponse {
	return TaskListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Created:     formatTime(l.Created),
		Updated:     formatTime(l.Updated),
		Count:       l.Count(),
		Progress:    l.Progress(),
	}
}

// ToTaskListResponses converts a slice of task lists. The result is never nil
// so that an empty collection encodes as [].
func ToTaskListResponses(lists []tasklist.TaskList) []TaskListResponse {
	items := make([]TaskListResponse, len(lists))
	for i := range lists {
		items[i] = ToTaskListResponse(&lists[i])
	}
	return items
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Created     string    `json:"created"`
	Updated     string    `json:"updated"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		Created:     formatTime(t.Created),
		Updated:     formatTime(t.Updated),
	}
	if t.DueDate != nil {
		due := formatTime(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

// ToTaskResponses converts a slice of tasks, never returning nil.
func ToTaskResponses(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
