package usecase

import (
	"context"

	"golang.org/x/oauth2"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"ai-todo-manager/internal/auth"
	repo "ai-todo-manager/internal/auth/repository"
)

// GoogleAuthURL returns the consent page URL, or "" when Google
// sign-in is not configured.
func (uc *implUseCase) GoogleAuthURL(state string) string {
	if uc.oauth == nil {
		return ""
	}
	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// GoogleSignIn resolves the OAuth code to a Google profile and signs
// the user in, creating the account on first visit.
func (uc *implUseCase) GoogleSignIn(ctx context.Context, code string) (auth.AuthOutput, error) {
	if uc.oauth == nil || code == "" {
		return auth.AuthOutput{}, auth.ErrGoogleAuthFailed
	}

	profile, err := uc.fetchProfile(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleSignIn fetchProfile: %v", err)
		return auth.AuthOutput{}, auth.ErrGoogleAuthFailed
	}

	email := normalizeEmail(profile.Email)
	if email == "" {
		return auth.AuthOutput{}, auth.ErrGoogleAuthFailed
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleSignIn GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if user.ID == "" {
		user, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Email: email,
			Name:  profile.Name,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleSignIn CreateUser: %v", err)
			return auth.AuthOutput{}, err
		}
	}

	return uc.issueSession(user)
}

// googleProfileFromCode exchanges the code and reads the userinfo
// endpoint with the resulting token.
func (uc *implUseCase) googleProfileFromCode(ctx context.Context, code string) (googleProfile, error) {
	token, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		return googleProfile{}, err
	}

	svc, err := goauth.NewService(ctx, option.WithTokenSource(uc.oauth.TokenSource(ctx, token)))
	if err != nil {
		return googleProfile{}, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return googleProfile{}, err
	}

	return googleProfile{Email: info.Email, Name: info.Name}, nil
}
