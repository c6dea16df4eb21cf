package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

// TaskListService defines the service port for task list lifecycle.
// Implemented by the application layer; called by inbound adapters (handlers).
// Lists returned by List, Get, Create and Update have their tasks loaded so
// that count and progress can be derived.
type TaskListService interface {
	// List returns all task lists, unfiltered and unpaginated.
	List(ctx context.Context) ([]tasklist.TaskList, error)

	// Create persists a new list and returns it with server-assigned fields.
	// Returns domain.ErrValidation if the candidate carries an id or has a
	// blank title.
	Create(ctx context.Context, candidate *tasklist.TaskList) (*tasklist.TaskList, error)

	// Get returns a single list.
	// Returns domain.ErrNotFound if the list does not exist.
	Get(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error)

	// Exists reports whether a list exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update merges the patch into the stored list and refreshes Updated.
	// Returns domain.ErrNotFound if the list does not exist.
	// Returns domain.ErrValidation if the patch is invalid.
	Update(ctx context.Context, id uuid.UUID, patch tasklist.Patch) (*tasklist.TaskList, error)

	// Delete removes a list and its tasks. Deleting a missing list succeeds.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskService defines the service port for tasks within a list.
type TaskService interface {
	// List returns the tasks owned by listID.
	List(ctx context.Context, listID uuid.UUID) ([]task.Task, error)

	// Create adds a task to listID. Priority defaults to MEDIUM and status is
	// always OPEN.
	// Returns domain.ErrValidation if the candidate carries an id, has a blank
	// title, or listID does not name an existing list.
	Create(ctx context.Context, listID uuid.UUID, candidate *task.Task) (*task.Task, error)

	// Get returns the task only if it belongs to listID.
	// Returns domain.ErrNotFound otherwise.
	Get(ctx context.Context, listID, id uuid.UUID) (*task.Task, error)

	// Update merges the patch into the task scoped by (listID, id).
	// Returns domain.ErrNotFound if no such task exists under listID.
	// Returns domain.ErrValidation if the patch is invalid.
	Update(ctx context.Context, listID, id uuid.UUID, patch task.Patch) (*task.Task, error)

	// Delete removes the task scoped by (listID, id). Succeeds if absent.
	Delete(ctx context.Context, listID, id uuid.UUID) error
}
