package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// Compile-time check that TaskListRepository implements ports.TaskListRepository.
var _ ports.TaskListRepository = (*TaskListRepository)(nil)

const taskListColumns = `id, title, description, created, updated`

// TaskListRepository stores task lists in the task_lists table.
type TaskListRepository struct {
	store *Store
}

func (r *TaskListRepository) FindAll(ctx context.Context) ([]tasklist.TaskList, error) {
	var lists []tasklist.TaskList
	err := r.store.run(ctx, "task_lists.find_all", func(ctx context.Context) error {
		rows, err := r.store.pool.Query(ctx,
			`SELECT `+taskListColumns+` FROM task_lists ORDER BY created, id`)
		if err != nil {
			return err
		}
		lists, err = pgx.CollectRows(rows, scanTaskList)
		return err
	})
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []tasklist.TaskList{}
	}
	return lists, nil
}

func (r *TaskListRepository) FindByID(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	var list tasklist.TaskList
	err := r.store.run(ctx, "task_lists.find_by_id", func(ctx context.Context) error {
		rows, err := r.store.pool.Query(ctx,
			`SELECT `+taskListColumns+` FROM task_lists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		list, err = pgx.CollectExactlyOneRow(rows, scanTaskList)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Save inserts the list, assigning an id when it has none, or replaces the
// mutable columns of an existing row. created is never overwritten.
func (r *TaskListRepository) Save(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	id := list.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var saved tasklist.TaskList
	err := r.store.run(ctx, "task_lists.save", func(ctx context.Context) error {
		rows, err := r.store.pool.Query(ctx, `
			INSERT INTO task_lists (`+taskListColumns+`)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				title       = EXCLUDED.title,
				description = EXCLUDED.description,
				updated     = EXCLUDED.updated
			RETURNING `+taskListColumns,
			id, list.Title, list.Description, list.Created, list.Updated,
		)
		if err != nil {
			return err
		}
		saved, err = pgx.CollectExactlyOneRow(rows, scanTaskList)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByID removes the list; its tasks go with it through ON DELETE CASCADE.
func (r *TaskListRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.store.run(ctx, "task_lists.delete_by_id", func(ctx context.Context) error {
		_, err := r.store.pool.Exec(ctx, `DELETE FROM task_lists WHERE id = $1`, id)
		return err
	})
}

func (r *TaskListRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.store.run(ctx, "task_lists.exists_by_id", func(ctx context.Context) error {
		return r.store.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM task_lists WHERE id = $1)`, id).Scan(&exists)
	})
	return exists, err
}

func scanTaskList(row pgx.CollectableRow) (tasklist.TaskList, error) {
	var l tasklist.TaskList
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Created, &l.Updated)
	l.Created = l.Created.UTC()
	l.Updated = l.Updated.UTC()
	return l, err
}
