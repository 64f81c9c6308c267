package usecase

import (
	"context"
	"time"

	"ai-todo-manager/internal/auth/repository"
	"ai-todo-manager/internal/model"
	"ai-todo-manager/pkg/scope"
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

// Mock repository with function fields.
type mockRepository struct {
	createFunc func(ctx context.Context, opt repository.CreateUserOptions) (model.User, error)
	getOneFunc func(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error)
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, opt)
	}
	return model.User{ID: "user-1", Email: opt.Email, Name: opt.Name, PasswordHash: opt.PasswordHash}, nil
}

func (m *mockRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(ctx, opt)
	}
	return model.User{}, nil
}

func testJWTManager() scope.Manager {
	return scope.NewManager("test-secret", time.Hour)
}
