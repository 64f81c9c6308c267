package http

import (
	"time"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      ai.UseCase
	timeout time.Duration
}

// New creates a new HTTP handler for the AI domain. timeout bounds each
// model-backed request.
func New(l log.Logger, uc ai.UseCase, timeout time.Duration) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		timeout: timeout,
	}
}
