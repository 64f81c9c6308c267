package usecase

import (
	"context"
	"strings"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

// Detail retrieves a single todo owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailTodoOutput, error) {
	t, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailTodoOutput{}, err
	}
	if t.ID == "" {
		return todo.DetailTodoOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailTodoOutput{Todo: t}, nil
}

// Update applies a partial update and returns the merged row. Nil
// fields keep the stored values.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateTodoInput) (todo.UpdateTodoOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateTodoOutput{}, todo.ErrTodoNotFound
	}

	opt := repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Category:    existing.Category,
		Completed:   existing.Completed,
		CompletedAt: existing.CompletedAt,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return todo.UpdateTodoOutput{}, todo.ErrTitleRequired
		}
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.DueDate != nil {
		opt.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !model.ValidPriority(*input.Priority) {
			return todo.UpdateTodoOutput{}, todo.ErrInvalidPriority
		}
		opt.Priority = *input.Priority
	}
	if input.Category != nil {
		opt.Category = input.Category
	}
	if input.Completed != nil && *input.Completed != existing.Completed {
		opt.Completed = *input.Completed
		if *input.Completed {
			now := uc.now()
			opt.CompletedAt = &now
		} else {
			opt.CompletedAt = nil
		}
	}

	t, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	return todo.UpdateTodoOutput{Todo: t}, nil
}

// Delete removes a todo owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTodo: %v", err)
		return err
	}
	if existing.ID == "" {
		return todo.ErrTodoNotFound
	}
	if err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}
