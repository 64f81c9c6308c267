package model

import "time"

// User is an account row. PasswordHash is empty for OAuth-only accounts.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
