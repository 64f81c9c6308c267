package model

// Scope carries the authenticated identity of a request.
type Scope struct {
	UserID string
	Email  string
}
