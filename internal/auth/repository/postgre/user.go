package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ai-todo-manager/internal/model"
	repo "ai-todo-manager/internal/auth/repository"
)

const userColumns = `id, email, name, password_hash, created_at`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s`, userColumns)

	var u model.User
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Email, opt.Name, opt.PasswordHash,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters.
// Returns a zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		return model.User{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`,
		userColumns, strings.Join(conditions, " AND "))

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
