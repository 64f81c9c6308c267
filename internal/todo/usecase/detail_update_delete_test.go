package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
	repo "ai-todo-manager/internal/todo/repository"
)

func strPtr(s string) *string { return &s }

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		_, err := uc.Detail(ctx, testScope, "missing")
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("err = %v, want ErrTodoNotFound", err)
		}
	})

	t.Run("Lookup Is Scoped To Caller", func(t *testing.T) {
		var got repo.GetOneTodoOptions
		mock := &mockRepository{
			getOneFunc: func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
				got = opt
				return model.Todo{ID: opt.ID, UserID: opt.UserID, Title: "t"}, nil
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		out, err := uc.Detail(ctx, testScope, "todo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != testScope.UserID {
			t.Errorf("lookup user = %q, want caller's", got.UserID)
		}
		if out.Todo.ID != "todo-1" {
			t.Errorf("unexpected todo: %+v", out.Todo)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	existing := model.Todo{
		ID:          "todo-1",
		UserID:      testScope.UserID,
		Title:       "원래 제목",
		Description: "원래 설명",
		Priority:    model.PriorityLow,
		Category:    []string{"업무"},
	}
	withExisting := func(updateFunc func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error)) *mockRepository {
		return &mockRepository{
			getOneFunc: func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
				return existing, nil
			},
			updateFunc: updateFunc,
		}
	}

	t.Run("Nil Fields Keep Stored Values", func(t *testing.T) {
		var got repo.UpdateTodoOptions
		mock := withExisting(func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
			got = opt
			return existing, nil
		})
		uc := New(mock, &mockLogger{}, testClock)

		if _, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{
			ID:    "todo-1",
			Title: strPtr("새 제목"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "새 제목" {
			t.Errorf("title = %q, want updated", got.Title)
		}
		if got.Description != existing.Description || got.Priority != existing.Priority {
			t.Errorf("untouched fields must keep stored values: %+v", got)
		}
	})

	t.Run("Completing Via Update Stamps CompletedAt", func(t *testing.T) {
		var got repo.UpdateTodoOptions
		mock := withExisting(func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
			got = opt
			return existing, nil
		})
		uc := New(mock, &mockLogger{}, testClock)

		done := true
		if _, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{ID: "todo-1", Completed: &done}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Completed || got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
			t.Errorf("completed = %v, completed_at = %v", got.Completed, got.CompletedAt)
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		mock := withExisting(nil)
		uc := New(mock, &mockLogger{}, testClock)

		_, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{ID: "todo-1", Title: strPtr("  ")})
		if !errors.Is(err, todo.ErrTitleRequired) {
			t.Errorf("err = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("Invalid Priority Rejected", func(t *testing.T) {
		mock := withExisting(nil)
		uc := New(mock, &mockLogger{}, testClock)

		_, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{ID: "todo-1", Priority: strPtr("asap")})
		if !errors.Is(err, todo.ErrInvalidPriority) {
			t.Errorf("err = %v, want ErrInvalidPriority", err)
		}
	})

	t.Run("Due Date Updates", func(t *testing.T) {
		var got repo.UpdateTodoOptions
		mock := withExisting(func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
			got = opt
			return existing, nil
		})
		uc := New(mock, &mockLogger{}, testClock)

		due := testNow.Add(48 * time.Hour)
		if _, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{ID: "todo-1", DueDate: &due}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", got.DueDate, due)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		_, err := uc.Update(ctx, testScope, todo.UpdateTodoInput{ID: "missing"})
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("err = %v, want ErrTodoNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{}, testClock)

		if err := uc.Delete(ctx, testScope, "missing"); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("err = %v, want ErrTodoNotFound", err)
		}
	})

	t.Run("Delete Is Scoped To Caller", func(t *testing.T) {
		var got repo.DeleteTodoOptions
		mock := &mockRepository{
			getOneFunc: func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
				return model.Todo{ID: opt.ID, UserID: opt.UserID}, nil
			},
			deleteFunc: func(ctx context.Context, opt repo.DeleteTodoOptions) error {
				got = opt
				return nil
			},
		}
		uc := New(mock, &mockLogger{}, testClock)

		if err := uc.Delete(ctx, testScope, "todo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "todo-1" || got.UserID != testScope.UserID {
			t.Errorf("delete options = %+v", got)
		}
	})
}
