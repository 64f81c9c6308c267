package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"ai-todo-manager/internal/auth/repository"
	"ai-todo-manager/pkg/log"
	"ai-todo-manager/pkg/scope"
)

// googleProfile is the subset of the Google userinfo payload we need.
type googleProfile struct {
	Email string
	Name  string
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	jwtManager scope.Manager
	oauth      *oauth2.Config

	// fetchProfile is swappable in tests; the default exchanges the
	// code against Google's userinfo endpoint.
	fetchProfile func(ctx context.Context, code string) (googleProfile, error)
}

// New creates a new auth UseCase implementation. oauthCfg may be nil
// when Google sign-in is not configured.
func New(repo repository.Repository, l log.Logger, jwtManager scope.Manager, oauthCfg *oauth2.Config) *implUseCase {
	uc := &implUseCase{
		repo:       repo,
		l:          l,
		jwtManager: jwtManager,
		oauth:      oauthCfg,
	}
	uc.fetchProfile = uc.googleProfileFromCode
	return uc
}
