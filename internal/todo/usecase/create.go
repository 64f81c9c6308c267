package usecase

import (
	"context"
	"strings"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

const defaultCategory = "기타"

// Create persists a new todo for the caller. Priority defaults to
// medium and category to 기타 so every stored row satisfies the same
// invariants as AI-generated ones.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateTodoOutput{}, todo.ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return todo.CreateTodoOutput{}, todo.ErrInvalidPriority
	}

	category := input.Category
	if len(category) == 0 {
		category = []string{defaultCategory}
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateTodoOutput{}, err
	}

	return todo.CreateTodoOutput{Todo: t}, nil
}
