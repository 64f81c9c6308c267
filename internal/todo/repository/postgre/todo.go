package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-todo-manager/internal/model"
	repo "ai-todo-manager/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, due_date, priority, category, completed, completed_at, created_date, updated_at`

func scanTodo(row interface{ Scan(...any) error }) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Priority, pq.Array(&t.Category), &t.Completed, &t.CompletedAt,
		&t.CreatedDate, &t.UpdatedAt,
	)
	return t, err
}

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`
		INSERT INTO todos (id, user_id, title, description, due_date, priority, category, completed, created_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NOW(), NOW())
		RETURNING %s`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description,
		opt.DueDate, opt.Priority, pq.Array(opt.Category),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTodo retrieves a single Todo by the provided filters.
// Returns a zero-value Todo (ID == "") when not found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = $1 AND user_id = $2 LIMIT 1`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns a filtered, paginated list of the user's Todos and
// the total count before pagination.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error) {
	countMods, countArgs := r.buildFilterQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM todos WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM todos %s`, todoColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, 0, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return todos, total, nil
}

// UpdateTodo overwrites a Todo with the post-merge state and returns
// the updated entity. Returns a zero-value Todo when not found.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, priority = $4,
		    category = $5, completed = $6, completed_at = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING %s`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.DueDate, opt.Priority,
		pq.Array(opt.Category), opt.Completed, opt.CompletedAt,
		opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTodo removes a Todo owned by the user.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
