package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ai-todo-manager/internal/auth"
	repo "ai-todo-manager/internal/auth/repository"
	"ai-todo-manager/internal/model"
	"ai-todo-manager/pkg/scope"
)

const minPasswordLen = 8

// SignUp registers a new account and signs it in.
func (uc *implUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}
	if len(input.Password) < minPasswordLen {
		return auth.AuthOutput{}, auth.ErrWeakPassword
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if existing.ID != "" {
		return auth.AuthOutput{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp GenerateFromPassword: %v", err)
		return auth.AuthOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp CreateUser: %v", err)
		return auth.AuthOutput{}, err
	}

	return uc.issueSession(user)
}

// SignIn verifies the password and issues a session token.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	// OAuth-only accounts have no password hash and cannot sign in
	// with a password.
	if user.ID == "" || user.PasswordHash == "" {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issueSession(user)
}

// Me returns the signed-in user's profile.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}

func (uc *implUseCase) issueSession(user model.User) (auth.AuthOutput, error) {
	token, err := uc.jwtManager.Generate(scope.Payload{UserID: user.ID, Email: user.Email})
	if err != nil {
		return auth.AuthOutput{}, err
	}
	return auth.AuthOutput{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
