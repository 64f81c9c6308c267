package auth

import "ai-todo-manager/internal/model"

// --- UseCase Inputs ---

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type SignInInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput carries a freshly issued session token and its user.
type AuthOutput struct {
	Token string
	User  model.User
}

type MeOutput struct {
	User model.User
}
