package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

// TaskListRepository is the persistence port for task lists. Implementations
// perform no validation; that is the application layer's job.
type TaskListRepository interface {
	// FindAll returns every task list. Tasks are not loaded (nil).
	FindAll(ctx context.Context) ([]tasklist.TaskList, error)

	// FindByID returns the list with the given id, tasks not loaded.
	// Returns domain.ErrNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error)

	// Save inserts the list when it has no id (assigning one) and otherwise
	// replaces the stored row with the same id. Returns the stored record.
	Save(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// DeleteByID removes the list and its tasks. Deleting a missing id is not
	// an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether a list with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// TaskRepository is the persistence port for tasks. Lookups and deletes can
// be scoped to the owning list.
type TaskRepository interface {
	// FindAll returns every task across all lists.
	FindAll(ctx context.Context) ([]task.Task, error)

	// FindByID returns the task with the given id regardless of its list.
	// Returns domain.ErrNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// Save inserts the task when it has no id (assigning one) and otherwise
	// replaces the stored row with the same id. Returns the stored record.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	// DeleteByID removes the task. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether a task with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindByListID returns the tasks owned by listID, oldest first. An unknown
	// listID yields an empty, non-nil slice.
	FindByListID(ctx context.Context, listID uuid.UUID) ([]task.Task, error)

	// FindByListIDAndID returns the task only if it belongs to listID.
	// Returns domain.ErrNotFound otherwise.
	FindByListIDAndID(ctx context.Context, listID, id uuid.UUID) (*task.Task, error)

	// DeleteByListIDAndID removes the task matching both ids in a single
	// atomic operation. No error if nothing matches.
	DeleteByListIDAndID(ctx context.Context, listID, id uuid.UUID) error
}
