package http

import (
	"ai-todo-manager/internal/auth"
	"ai-todo-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
