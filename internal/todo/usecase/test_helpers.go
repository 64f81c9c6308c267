package usecase

import (
	"context"
	"time"

	"ai-todo-manager/internal/model"
	repo "ai-todo-manager/internal/todo/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with function fields so each test overrides only
// what it needs.
type mockRepository struct {
	createFunc func(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error)
	getOneFunc func(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error)
	listFunc   func(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error)
	updateFunc func(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error)
	deleteFunc func(ctx context.Context, opt repo.DeleteTodoOptions) error
}

func (m *mockRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, opt)
	}
	return model.Todo{}, nil
}

func (m *mockRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(ctx, opt)
	}
	return model.Todo{}, nil
}

func (m *mockRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, opt)
	}
	return model.Todo{}, nil
}

func (m *mockRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, opt)
	}
	return nil
}

var testScope = model.Scope{UserID: "user-1", Email: "tester@example.com"}

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.FixedZone("KST", 9*60*60))

func testClock() time.Time { return testNow }
