package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		_, err := uc.Toggle(ctx, testScope, "missing")
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("err = %v, want ErrTodoNotFound", err)
		}
	})

	t.Run("Completing Stamps CompletedAt", func(t *testing.T) {
		var got repo.UpdateTodoOptions
		mock := &mockRepository{
			getOneFunc: func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
				return model.Todo{ID: opt.ID, UserID: opt.UserID, Title: "t", Completed: false}, nil
			},
			updateFunc: func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
				got = opt
				return model.Todo{ID: opt.ID, Completed: opt.Completed, CompletedAt: opt.CompletedAt}, nil
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		out, err := uc.Toggle(ctx, testScope, "todo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Completed {
			t.Errorf("toggle must flip completed to true")
		}
		if got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
			t.Errorf("completed_at = %v, want the injected clock time", got.CompletedAt)
		}
		if !out.Todo.Completed {
			t.Errorf("output must reflect the new state")
		}
	})

	t.Run("Reopening Clears CompletedAt", func(t *testing.T) {
		var got repo.UpdateTodoOptions
		mock := &mockRepository{
			getOneFunc: func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
				done := testNow
				return model.Todo{ID: opt.ID, Title: "t", Completed: true, CompletedAt: &done}, nil
			},
			updateFunc: func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
				got = opt
				return model.Todo{ID: opt.ID, Completed: opt.Completed}, nil
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		if _, err := uc.Toggle(ctx, testScope, "todo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Completed {
			t.Errorf("toggle must flip completed to false")
		}
		if got.CompletedAt != nil {
			t.Errorf("completed_at must clear on reopen, got %v", got.CompletedAt)
		}
	})
}
