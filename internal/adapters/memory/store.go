// Package memory implements the task list and task repositories in process
// memory. It backs the local profile and the end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

var (
	_ ports.TaskListRepository = (*TaskListRepository)(nil)
	_ ports.TaskRepository     = (*TaskRepository)(nil)
	_ ports.HealthChecker      = (*Store)(nil)
)

// Store holds both entity maps behind one lock so that deleting a list and
// its tasks is atomic. Records are copied in and out.
type Store struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]tasklist.TaskList
	tasks map[uuid.UUID]task.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		lists: make(map[uuid.UUID]tasklist.TaskList),
		tasks: make(map[uuid.UUID]task.Task),
	}
}

// TaskLists returns the task list repository view of the store.
func (s *Store) TaskLists() *TaskListRepository {
	return &TaskListRepository{s: s}
}

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{s: s}
}

// Name identifies the store in readiness output.
func (s *Store) Name() string {
	return "memory"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// TaskListRepository is the task list view of a Store.
type TaskListRepository struct {
	s *Store
}

func (r *TaskListRepository) FindAll(context.Context) ([]tasklist.TaskList, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]tasklist.TaskList, 0, len(r.s.lists))
	for _, l := range r.s.lists {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b tasklist.TaskList) int {
		return cmp.Or(a.Created.Compare(b.Created), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}

func (r *TaskListRepository) FindByID(_ context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

// Save upserts the list. The stored copy never carries tasks and keeps its
// original created stamp.
func (r *TaskListRepository) Save(_ context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *list
	stored.Tasks = nil
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if prev, ok := r.s.lists[stored.ID]; ok {
		stored.Created = prev.Created
	}
	r.s.lists[stored.ID] = stored
	return &stored, nil
}

// DeleteByID removes the list and every task it owns.
func (r *TaskListRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.lists, id)
	for tid, t := range r.s.tasks {
		if t.ListID == id {
			delete(r.s.tasks, tid)
		}
	}
	return nil
}

func (r *TaskListRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.lists[id]
	return ok, nil
}

// TaskRepository is the task view of a Store.
type TaskRepository struct {
	s *Store
}

func (r *TaskRepository) FindAll(context.Context) ([]task.Task, error) {
	return r.filter(func(task.Task) bool { return true }), nil
}

func (r *TaskRepository) FindByID(_ context.Context, id uuid.UUID) (*task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyTask(t), nil
}

// Save upserts the task. Its list must exist, matching the foreign key of the
// postgres schema. An existing task keeps its list and created stamp.
func (r *TaskRepository) Save(_ context.Context, t *task.Task) (*task.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *copyTask(*t)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if prev, ok := r.s.tasks[stored.ID]; ok {
		stored.ListID = prev.ListID
		stored.Created = prev.Created
	}
	if _, ok := r.s.lists[stored.ListID]; !ok {
		return nil, domain.ErrConflict
	}
	r.s.tasks[stored.ID] = stored
	return copyTask(stored), nil
}

func (r *TaskRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.tasks, id)
	return nil
}

func (r *TaskRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.tasks[id]
	return ok, nil
}

func (r *TaskRepository) FindByListID(_ context.Context, listID uuid.UUID) ([]task.Task, error) {
	return r.filter(func(t task.Task) bool { return t.ListID == listID }), nil
}

func (r *TaskRepository) FindByListIDAndID(_ context.Context, listID, id uuid.UUID) (*task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok || t.ListID != listID {
		return nil, domain.ErrNotFound
	}
	return copyTask(t), nil
}

func (r *TaskRepository) DeleteByListIDAndID(_ context.Context, listID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t, ok := r.s.tasks[id]; ok && t.ListID == listID {
		delete(r.s.tasks, id)
	}
	return nil
}

// filter returns copies of the matching tasks, oldest first.
func (r *TaskRepository) filter(keep func(task.Task) bool) []task.Task {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]task.Task, 0)
	for _, t := range r.s.tasks {
		if keep(t) {
			out = append(out, *copyTask(t))
		}
	}
	slices.SortFunc(out, func(a, b task.Task) int {
		return cmp.Or(a.Created.Compare(b.Created), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out
}

// copyTask detaches the due date pointer from the stored record.
func copyTask(t task.Task) *task.Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return &t
}
