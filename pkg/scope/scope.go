package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Payload is the identity carried by a session token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies session tokens.
type Manager interface {
	Generate(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates an HS256 JWT session manager.
func NewManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{secret: []byte(secret), ttl: ttl}
}

func (m *jwtManager) Generate(p Payload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": p.UserID,
		"email":   p.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *jwtManager) Verify(tokenString string) (Payload, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: userID, Email: email}, nil
}
