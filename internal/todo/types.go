package todo

import (
	"time"

	"ai-todo-manager/internal/model"
)

// --- UseCase Inputs ---

type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Category    []string
}

type ListTodosInput struct {
	Completed *bool
	Priority  string
	Category  string
	Limit     int
	Offset    int
}

// UpdateTodoInput carries a partial update. Nil pointer fields and a
// nil category slice leave the stored value untouched.
type UpdateTodoInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Category    []string
	Completed   *bool
}

// --- UseCase Outputs ---

type CreateTodoOutput struct {
	Todo model.Todo
}

type ListTodosOutput struct {
	Todos  []model.Todo
	Total  int
	Limit  int
	Offset int
}

type DetailTodoOutput struct {
	Todo model.Todo
}

type UpdateTodoOutput struct {
	Todo model.Todo
}

type ToggleTodoOutput struct {
	Todo model.Todo
}
