package repository

import (
	"context"

	"ai-todo-manager/internal/model"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the Todo entity.
// Every operation is scoped to a user; a row belonging to another user
// behaves as if it does not exist.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (model.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, int, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error
}
