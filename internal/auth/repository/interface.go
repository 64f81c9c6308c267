package repository

import (
	"context"

	"ai-todo-manager/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
