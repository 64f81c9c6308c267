package postgre

import (
	"database/sql"
	"fmt"

	"ai-todo-manager/internal/todo/repository"
	"ai-todo-manager/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the todo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/postgre.%s", method)
}
