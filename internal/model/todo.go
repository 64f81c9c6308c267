package model

import "time"

// Priority levels for a todo.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Todo is a row in the todos table, scoped to its owning user.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Category    []string
	Completed   bool
	CompletedAt *time.Time
	CreatedDate time.Time
	UpdatedAt   time.Time
}
