package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/memory"
	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

var base = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func saveList(t *testing.T, r *memory.TaskListRepository, title string, created time.Time) *tasklist.TaskList {
	t.Helper()
	l, err := r.Save(context.Background(), &tasklist.TaskList{Title: title, Created: created, Updated: created})
	if err != nil {
		t.Fatalf("Save(list) error = %v", err)
	}
	return l
}

func saveTask(t *testing.T, r *memory.TaskRepository, listID uuid.UUID, title string, created time.Time) *task.Task {
	t.Helper()
	tk, err := r.Save(context.Background(), &task.Task{
		Title: title, ListID: listID, Priority: task.PriorityMedium, Status: task.StatusOpen,
		Created: created, Updated: created,
	})
	if err != nil {
		t.Fatalf("Save(task) error = %v", err)
	}
	return tk
}

// --- TaskListRepository ---

func TestTaskListRepository_SaveAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lists := memory.New().TaskLists()

	saved := saveList(t, lists, "Groceries", base)
	if saved.ID == uuid.Nil {
		t.Fatal("Save() did not assign an id")
	}

	got, err := lists.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "Groceries" {
		t.Errorf("FindByID().Title = %q, want Groceries", got.Title)
	}

	got.Title = "mutated"
	again, _ := lists.FindByID(ctx, saved.ID)
	if again.Title != "Groceries" {
		t.Error("mutating a returned list changed the stored record")
	}

	if _, err := lists.FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTaskListRepository_SaveKeepsCreated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lists := memory.New().TaskLists()

	saved := saveList(t, lists, "Groceries", base)
	saved.Title = "Shopping"
	saved.Created = base.Add(time.Hour)
	saved.Updated = base.Add(time.Minute)

	updated, err := lists.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !updated.Created.Equal(base) {
		t.Errorf("Save().Created = %v, want %v", updated.Created, base)
	}
	if updated.Title != "Shopping" {
		t.Errorf("Save().Title = %q, want Shopping", updated.Title)
	}

	all, _ := lists.FindAll(ctx)
	if len(all) != 1 {
		t.Errorf("FindAll() len = %d, want 1", len(all))
	}
}

func TestTaskListRepository_FindAllOldestFirst(t *testing.T) {
	t.Parallel()
	lists := memory.New().TaskLists()

	saveList(t, lists, "second", base.Add(time.Second))
	saveList(t, lists, "first", base)

	all, err := lists.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 || all[0].Title != "first" || all[1].Title != "second" {
		t.Errorf("FindAll() = %v, want [first second]", all)
	}
}

func TestTaskListRepository_DeleteCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	lists, tasks := store.TaskLists(), store.Tasks()

	l := saveList(t, lists, "Chores", base)
	other := saveList(t, lists, "Other", base)
	tk := saveTask(t, tasks, l.ID, "Dishes", base)
	kept := saveTask(t, tasks, other.ID, "Laundry", base)

	if err := lists.DeleteByID(ctx, l.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if err := lists.DeleteByID(ctx, l.ID); err != nil {
		t.Fatalf("DeleteByID(again) error = %v, want nil", err)
	}

	if ok, _ := lists.ExistsByID(ctx, l.ID); ok {
		t.Error("list still exists after delete")
	}
	if ok, _ := tasks.ExistsByID(ctx, tk.ID); ok {
		t.Error("task of deleted list still exists")
	}
	if ok, _ := tasks.ExistsByID(ctx, kept.ID); !ok {
		t.Error("task of another list was deleted")
	}
}

// --- TaskRepository ---

func TestTaskRepository_ScopedLookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	lists, tasks := store.TaskLists(), store.Tasks()

	a := saveList(t, lists, "A", base)
	b := saveList(t, lists, "B", base)
	second := saveTask(t, tasks, a.ID, "second", base.Add(time.Second))
	first := saveTask(t, tasks, a.ID, "first", base)
	saveTask(t, tasks, b.ID, "other", base)

	got, err := tasks.FindByListID(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindByListID() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("FindByListID() = %v, want [first second]", got)
	}

	empty, _ := tasks.FindByListID(ctx, uuid.New())
	if empty == nil || len(empty) != 0 {
		t.Errorf("FindByListID(unknown) = %v, want empty non-nil", empty)
	}

	if _, err := tasks.FindByListIDAndID(ctx, b.ID, first.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByListIDAndID(wrong list) error = %v, want ErrNotFound", err)
	}
	if tk, err := tasks.FindByListIDAndID(ctx, a.ID, first.ID); err != nil || tk.Title != "first" {
		t.Errorf("FindByListIDAndID() = %v, %v; want first", tk, err)
	}
	if tk, err := tasks.FindByID(ctx, first.ID); err != nil || tk.ListID != a.ID {
		t.Errorf("FindByID() = %v, %v; want task in list A", tk, err)
	}

	all, _ := tasks.FindAll(ctx)
	if len(all) != 3 {
		t.Errorf("FindAll() len = %d, want 3", len(all))
	}
}

func TestTaskRepository_DeleteByListIDAndID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	lists, tasks := store.TaskLists(), store.Tasks()

	a := saveList(t, lists, "A", base)
	b := saveList(t, lists, "B", base)
	tk := saveTask(t, tasks, a.ID, "keep", base)

	if err := tasks.DeleteByListIDAndID(ctx, b.ID, tk.ID); err != nil {
		t.Fatalf("DeleteByListIDAndID(wrong list) error = %v", err)
	}
	if ok, _ := tasks.ExistsByID(ctx, tk.ID); !ok {
		t.Fatal("task removed through the wrong list")
	}

	if err := tasks.DeleteByListIDAndID(ctx, a.ID, tk.ID); err != nil {
		t.Fatalf("DeleteByListIDAndID() error = %v", err)
	}
	if ok, _ := tasks.ExistsByID(ctx, tk.ID); ok {
		t.Error("task still exists after delete")
	}
	if err := tasks.DeleteByID(ctx, tk.ID); err != nil {
		t.Errorf("DeleteByID(missing) error = %v, want nil", err)
	}
}

func TestTaskRepository_SaveRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	lists, tasks := store.TaskLists(), store.Tasks()

	a := saveList(t, lists, "A", base)
	b := saveList(t, lists, "B", base)
	tk := saveTask(t, tasks, a.ID, "call", base)

	due := base.Add(48 * time.Hour)
	tk.DueDate = &due
	tk.ListID = b.ID
	tk.Status = task.StatusClosed

	saved, err := tasks.Save(ctx, tk)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ListID != a.ID {
		t.Errorf("Save().ListID = %s, want unchanged %s", saved.ListID, a.ID)
	}
	if saved.Status != task.StatusClosed {
		t.Errorf("Save().Status = %q, want CLOSED", saved.Status)
	}

	due = due.Add(time.Hour)
	stored, _ := tasks.FindByID(ctx, tk.ID)
	if !stored.DueDate.Equal(base.Add(48 * time.Hour)) {
		t.Error("mutating the caller's due date changed the stored record")
	}

	if _, err := tasks.Save(ctx, &task.Task{Title: "orphan", ListID: uuid.New()}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Save(unknown list) error = %v, want ErrConflict", err)
	}
}

func TestStore_Health(t *testing.T) {
	t.Parallel()

	store := memory.New()
	if store.Name() != "memory" {
		t.Errorf("Name() = %q, want memory", store.Name())
	}
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	lists, tasks := store.TaskLists(), store.Tasks()
	l := saveList(t, lists, "busy", base)

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			tk, err := tasks.Save(ctx, &task.Task{Title: "x", ListID: l.ID, Created: base, Updated: base})
			if err != nil {
				t.Errorf("Save() error = %v", err)
				return
			}
			_, _ = tasks.FindByListID(ctx, l.ID)
			_ = tasks.DeleteByListIDAndID(ctx, l.ID, tk.ID)
		})
	}
	wg.Wait()

	remaining, _ := tasks.FindByListID(ctx, l.ID)
	if len(remaining) != 0 {
		t.Errorf("remaining tasks = %d, want 0", len(remaining))
	}
}
