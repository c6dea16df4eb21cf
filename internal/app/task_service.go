package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// msgListNotFound reports an unknown parent list on task creation. It is an
// invalid-argument condition, not a not-found one.
const msgListNotFound = "task list not found"

// TaskService implements ports.TaskService. Every operation is scoped to the
// owning task list.
type TaskService struct {
	tasks  ports.TaskRepository
	lists  ports.TaskListRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskService creates a TaskService. If logger is nil, a no-op logger is
// used.
func NewTaskService(
	tasks ports.TaskRepository,
	lists ports.TaskListRepository,
	logger *slog.Logger,
	opts ...Option,
) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := newOptions(opts)
	return &TaskService{
		tasks:  tasks,
		lists:  lists,
		logger: logger,
		now:    o.now,
	}
}

// List returns the tasks owned by listID.
func (s *TaskService) List(ctx context.Context, listID uuid.UUID) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks", slog.String("list_id", listID.String()))

	tasks, err := s.tasks.FindByListID(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "ListTasks", listID, uuid.Nil, err)
		return nil, fmt.Errorf("listing tasks for task list %s: %w", listID, err)
	}
	return tasks, nil
}

// Create validates the candidate, applies defaults and stores it under listID.
// Status is always OPEN regardless of the candidate.
func (s *TaskService) Create(ctx context.Context, listID uuid.UUID, candidate *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("list_id", listID.String()),
		slog.String("title", candidate.Title),
	)

	if err := candidate.ValidateCandidate(); err != nil {
		return nil, err
	}

	exists, err := s.lists.ExistsByID(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "CreateTask", listID, uuid.Nil, err)
		return nil, fmt.Errorf("checking task list %s: %w", listID, err)
	}
	if !exists {
		return nil, domain.NewValidationError("taskListId", msgListNotFound)
	}

	priority := candidate.Priority
	if priority == "" {
		priority = task.DefaultPriority
	}

	now := s.now()
	saved, err := s.tasks.Save(ctx, &task.Task{
		Title:       candidate.Title,
		Description: candidate.Description,
		DueDate:     candidate.DueDate,
		Priority:    priority,
		Status:      task.StatusOpen,
		ListID:      listID,
		Created:     now,
		Updated:     now,
	})
	if err != nil {
		s.logFailure(ctx, "CreateTask", listID, uuid.Nil, err)
		return nil, fmt.Errorf("saving task: %w", err)
	}

	return saved, nil
}

// Get returns the task only when it belongs to listID.
func (s *TaskService) Get(ctx context.Context, listID, id uuid.UUID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task",
		slog.String("list_id", listID.String()),
		slog.String("id", id.String()),
	)

	t, err := s.tasks.FindByListIDAndID(ctx, listID, id)
	if err != nil {
		s.logFailure(ctx, "GetTask", listID, id, err)
		return nil, fmt.Errorf("finding task %s: %w", id, err)
	}
	return t, nil
}

// Update merges patch into the task scoped by (listID, id). The owning list
// never changes.
func (s *TaskService) Update(ctx context.Context, listID, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task",
		slog.String("list_id", listID.String()),
		slog.String("id", id.String()),
		slog.Bool("empty_patch", patch.IsEmpty()),
	)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tasks.FindByListIDAndID(ctx, listID, id)
	if err != nil {
		s.logFailure(ctx, "UpdateTask", listID, id, err)
		return nil, fmt.Errorf("finding task %s: %w", id, err)
	}

	patch.Apply(t)
	t.ListID = listID
	t.Touch(s.now())

	saved, err := s.tasks.Save(ctx, t)
	if err != nil {
		s.logFailure(ctx, "UpdateTask", listID, id, err)
		return nil, fmt.Errorf("saving task %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes the task scoped by (listID, id). A missing pair is not an
// error.
func (s *TaskService) Delete(ctx context.Context, listID, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task",
		slog.String("list_id", listID.String()),
		slog.String("id", id.String()),
	)

	if err := s.tasks.DeleteByListIDAndID(ctx, listID, id); err != nil {
		s.logFailure(ctx, "DeleteTask", listID, id, err)
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

func (s *TaskService) logFailure(ctx context.Context, op string, listID, id uuid.UUID, err error) {
	attrs := []any{
		slog.String("operation", op),
		slog.String("list_id", listID.String()),
	}
	if id != uuid.Nil {
		attrs = append(attrs, slog.String("id", id.String()))
	}
	attrs = append(attrs, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "task operation failed", attrs...)
}
