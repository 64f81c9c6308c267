package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password too short")
	ErrGoogleAuthFailed   = errors.New("google authentication failed")
)
