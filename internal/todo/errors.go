package todo

import "errors"

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
)
