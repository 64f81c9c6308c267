package usecase

import (
	"context"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

// List returns the caller's todos, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	todos, total, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Priority:  input.Priority,
		Category:  input.Category,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListTodosOutput{}, err
	}

	return todo.ListTodosOutput{
		Todos:  todos,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
