package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Title Required", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		for _, title := range []string{"", "   ", "\t\n"} {
			_, err := uc.Create(ctx, testScope, todo.CreateTodoInput{Title: title})
			if !errors.Is(err, todo.ErrTitleRequired) {
				t.Errorf("title %q: err = %v, want ErrTitleRequired", title, err)
			}
		}
	})

	t.Run("Defaults Applied And Scoped To Caller", func(t *testing.T) {
		var got repo.CreateTodoOptions
		mock := &mockRepository{
			createFunc: func(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
				got = opt
				return model.Todo{ID: "todo-1", UserID: opt.UserID, Title: opt.Title}, nil
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		out, err := uc.Create(ctx, testScope, todo.CreateTodoInput{Title: "  회의 준비  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != testScope.UserID {
			t.Errorf("row must belong to the caller, got user %q", got.UserID)
		}
		if got.Title != "회의 준비" {
			t.Errorf("title must be trimmed, got %q", got.Title)
		}
		if got.Priority != model.PriorityMedium {
			t.Errorf("priority default = %q, want medium", got.Priority)
		}
		if len(got.Category) != 1 || got.Category[0] != "기타" {
			t.Errorf("category default = %v, want [기타]", got.Category)
		}
		if out.Todo.ID != "todo-1" {
			t.Errorf("unexpected output: %+v", out.Todo)
		}
	})

	t.Run("Invalid Priority Rejected", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		_, err := uc.Create(ctx, testScope, todo.CreateTodoInput{Title: "t", Priority: "urgent"})
		if !errors.Is(err, todo.ErrInvalidPriority) {
			t.Errorf("err = %v, want ErrInvalidPriority", err)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		mock := &mockRepository{
			createFunc: func(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
				return model.Todo{}, repo.ErrFailedToInsert
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		_, err := uc.Create(ctx, testScope, todo.CreateTodoInput{Title: "t"})
		if !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("err = %v, want ErrFailedToInsert", err)
		}
	})
}
