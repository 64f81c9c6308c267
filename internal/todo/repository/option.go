package repository

import "time"

// CreateTodoOptions holds parameters for inserting a new Todo.
type CreateTodoOptions struct {
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Category    []string
}

// GetOneTodoOptions holds filter parameters for fetching a single Todo.
type GetOneTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions holds filter and pagination parameters for listing Todos.
type ListTodosOptions struct {
	UserID    string
	Completed *bool
	Priority  string
	Category  string
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTodoOptions holds the full post-merge row state for an update.
type UpdateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Category    []string
	Completed   bool
	CompletedAt *time.Time
}

// DeleteTodoOptions holds parameters for removing a Todo.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}
