package auth

import (
	"context"

	"ai-todo-manager/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (AuthOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)

	// GoogleAuthURL returns the consent page URL for the given state.
	GoogleAuthURL(state string) string
	// GoogleSignIn exchanges an OAuth code, resolves the Google profile
	// and signs the user in, creating the account on first visit.
	GoogleSignIn(ctx context.Context, code string) (AuthOutput, error)
}
