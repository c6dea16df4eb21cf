package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// Compile-time check that TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)

const taskColumns = `id, list_id, title, description, due_date, priority, status, created, updated`

// TaskRepository stores tasks in the tasks table.
type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	return r.collect(ctx, "tasks.find_all",
		`SELECT `+taskColumns+` FROM tasks ORDER BY created, id`)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return r.one(ctx, "tasks.find_by_id",
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
}

// Save inserts the task, assigning an id when it has none, or replaces the
// mutable columns of an existing row. list_id and created are never
// overwritten.
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return r.one(ctx, "tasks.save", `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title       = EXCLUDED.title,
			description = EXCLUDED.description,
			due_date    = EXCLUDED.due_date,
			priority    = EXCLUDED.priority,
			status      = EXCLUDED.status,
			updated     = EXCLUDED.updated
		RETURNING `+taskColumns,
		id, t.ListID, t.Title, t.Description, t.DueDate,
		string(t.Priority), string(t.Status), t.Created, t.Updated,
	)
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.store.run(ctx, "tasks.delete_by_id", func(ctx context.Context) error {
		_, err := r.store.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		return err
	})
}

func (r *TaskRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.store.run(ctx, "tasks.exists_by_id", func(ctx context.Context) error {
		return r.store.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
	})
	return exists, err
}

func (r *TaskRepository) FindByListID(ctx context.Context, listID uuid.UUID) ([]task.Task, error) {
	return r.collect(ctx, "tasks.find_by_list_id",
		`SELECT `+taskColumns+` FROM tasks WHERE list_id = $1 ORDER BY created, id`, listID)
}

func (r *TaskRepository) FindByListIDAndID(ctx context.Context, listID, id uuid.UUID) (*task.Task, error) {
	return r.one(ctx, "tasks.find_by_list_id_and_id",
		`SELECT `+taskColumns+` FROM tasks WHERE list_id = $1 AND id = $2`, listID, id)
}

func (r *TaskRepository) DeleteByListIDAndID(ctx context.Context, listID, id uuid.UUID) error {
	return r.store.run(ctx, "tasks.delete_by_list_id_and_id", func(ctx context.Context) error {
		_, err := r.store.pool.Exec(ctx, `DELETE FROM tasks WHERE list_id = $1 AND id = $2`, listID, id)
		return err
	})
}

func (r *TaskRepository) collect(ctx context.Context, op, sql string, args ...any) ([]task.Task, error) {
	var tasks []task.Task
	err := r.store.run(ctx, op, func(ctx context.Context) error {
		rows, err := r.store.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		tasks, err = pgx.CollectRows(rows, scanTask)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

func (r *TaskRepository) one(ctx context.Context, op, sql string, args ...any) (*task.Task, error) {
	var t task.Task
	err := r.store.run(ctx, op, func(ctx context.Context) error {
		rows, err := r.store.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		t, err = pgx.CollectExactlyOneRow(rows, scanTask)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTask(row pgx.CollectableRow) (task.Task, error) {
	var (
		t        task.Task
		priority string
		status   string
	)
	err := row.Scan(&t.ID, &t.ListID, &t.Title, &t.Description, &t.DueDate,
		&priority, &status, &t.Created, &t.Updated)
	if err != nil {
		return t, err
	}
	t.Priority = task.Priority(priority)
	t.Status = task.Status(status)
	t.Created = t.Created.UTC()
	t.Updated = t.Updated.UTC()
	if t.DueDate != nil {
		due := t.DueDate.UTC()
		t.DueDate = &due
	}
	return t, nil
}
