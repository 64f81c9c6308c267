package todo

import (
	"context"

	"ai-todo-manager/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTodoInput) (CreateTodoOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTodosInput) (ListTodosOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTodoOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTodoInput) (UpdateTodoOutput, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleTodoOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
