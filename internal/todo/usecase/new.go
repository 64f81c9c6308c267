package usecase

import (
	"time"

	"ai-todo-manager/internal/todo/repository"
	"ai-todo-manager/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new todo UseCase implementation. nowFunc may be nil,
// in which case the wall clock is used.
func New(repo repository.Repository, l log.Logger, nowFunc func() time.Time) *implUseCase {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  nowFunc,
	}
}
