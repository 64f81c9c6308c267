package usecase

import (
	"context"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

// Toggle flips the completion state. Completing stamps completed_at,
// reopening clears it.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (todo.ToggleTodoOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTodo: %v", err)
		return todo.ToggleTodoOutput{}, err
	}
	if existing.ID == "" {
		return todo.ToggleTodoOutput{}, todo.ErrTodoNotFound
	}

	opt := repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Category:    existing.Category,
		Completed:   !existing.Completed,
	}
	if opt.Completed {
		now := uc.now()
		opt.CompletedAt = &now
	}

	t, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTodo: %v", err)
		return todo.ToggleTodoOutput{}, err
	}
	return todo.ToggleTodoOutput{Todo: t}, nil
}
