package http

import (
	"ai-todo-manager/internal/todo"
	"ai-todo-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
