// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/app/fanout"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// Compile-time check that TaskListService implements ports.TaskListService.
var _ ports.TaskListService = (*TaskListService)(nil)

// TaskListService implements ports.TaskListService on top of the repository
// ports. It enforces creation rules, applies patches and loads each list's
// tasks so that count and progress can be derived by the caller.
type TaskListService struct {
	lists       ports.TaskListRepository
	tasks       ports.TaskRepository
	logger      *slog.Logger
	now         func() time.Time
	listWorkers int
}

// NewTaskListService creates a TaskListService. If logger is nil, a no-op
// logger is used.
func NewTaskListService(
	lists ports.TaskListRepository,
	tasks ports.TaskRepository,
	logger *slog.Logger,
	opts ...Option,
) *TaskListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := newOptions(opts)
	return &TaskListService{
		lists:       lists,
		tasks:       tasks,
		logger:      logger,
		now:         o.now,
		listWorkers: o.listWorkers,
	}
}

// List returns every task list with its tasks loaded.
func (s *TaskListService) List(ctx context.Context) ([]tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "listing task lists")

	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task lists",
			slog.String("operation", "ListTaskLists"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing task lists: %w", err)
	}

	hydrated, err := fanout.Map(ctx, s.listWorkers, lists, s.withTasks)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load tasks for task lists",
			slog.String("operation", "ListTaskLists"),
			slog.Int("lists", len(lists)),
			slog.Any("error", err),
		)
		return nil, err
	}

	return hydrated, nil
}

// Create validates the candidate and persists a new list. Only the title and
// description are taken from the candidate.
func (s *TaskListService) Create(ctx context.Context, candidate *tasklist.TaskList) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "creating task list", slog.String("title", candidate.Title))

	if err := candidate.ValidateCandidate(); err != nil {
		return nil, err
	}

	now := s.now()
	saved, err := s.lists.Save(ctx, &tasklist.TaskList{
		Title:       candidate.Title,
		Description: candidate.Description,
		Created:     now,
		Updated:     now,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task list",
			slog.String("operation", "CreateTaskList"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving task list: %w", err)
	}

	saved.Tasks = []task.Task{}
	return saved, nil
}

// Get returns a single list with its tasks loaded.
func (s *TaskListService) Get(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "fetching task list", slog.String("id", id.String()))

	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetTaskList", id, err)
		return nil, fmt.Errorf("finding task list %s: %w", id, err)
	}

	hydrated, err := s.withTasks(ctx, *list)
	if err != nil {
		s.logFailure(ctx, "GetTaskList", id, err)
		return nil, err
	}

	return &hydrated, nil
}

// Exists reports whether a list with the given id is stored.
func (s *TaskListService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.lists.ExistsByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, "TaskListExists", id, err)
		return false, fmt.Errorf("checking task list %s: %w", id, err)
	}
	return ok, nil
}

// Update merges patch into the stored list and refreshes its updated stamp.
func (s *TaskListService) Update(ctx context.Context, id uuid.UUID, patch tasklist.Patch) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "updating task list", slog.String("id", id.String()))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, "UpdateTaskList", id, err)
		return nil, fmt.Errorf("finding task list %s: %w", id, err)
	}

	patch.Apply(list)
	list.Touch(s.now())

	saved, err := s.lists.Save(ctx, list)
	if err != nil {
		s.logFailure(ctx, "UpdateTaskList", id, err)
		return nil, fmt.Errorf("saving task list %s: %w", id, err)
	}

	hydrated, err := s.withTasks(ctx, *saved)
	if err != nil {
		s.logFailure(ctx, "UpdateTaskList", id, err)
		return nil, err
	}

	return &hydrated, nil
}

// Delete removes the list and, through the store, its tasks.
func (s *TaskListService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task list", slog.String("id", id.String()))

	if err := s.lists.DeleteByID(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTaskList", id, err)
		return fmt.Errorf("deleting task list %s: %w", id, err)
	}
	return nil
}

// withTasks returns a copy of list with its task collection loaded.
func (s *TaskListService) withTasks(ctx context.Context, list tasklist.TaskList) (tasklist.TaskList, error) {
	tasks, err := s.tasks.FindByListID(ctx, list.ID)
	if err != nil {
		return list, fmt.Errorf("loading tasks for task list %s: %w", list.ID, err)
	}
	list.Tasks = tasks
	return list, nil
}

func (s *TaskListService) logFailure(ctx context.Context, op string, id uuid.UUID, err error) {
	s.logger.ErrorContext(ctx, "task list operation failed",
		slog.String("operation", op),
		slog.String("id", id.String()),
		slog.Any("error", err),
	)
}
