package scope_test

import (
	"errors"
	"testing"
	"time"

	"ai-todo-manager/pkg/scope"
)

func TestManager(t *testing.T) {
	m := scope.NewManager("test-secret", time.Hour)

	t.Run("Round Trip", func(t *testing.T) {
		token, err := m.Generate(scope.Payload{UserID: "u-1", Email: "a@b.c"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		p, err := m.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if p.UserID != "u-1" || p.Email != "a@b.c" {
			t.Errorf("payload mismatch: %+v", p)
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		other := scope.NewManager("other-secret", time.Hour)
		token, _ := other.Generate(scope.Payload{UserID: "u-1"})

		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		short := scope.NewManager("test-secret", -time.Minute)
		token, _ := short.Generate(scope.Payload{UserID: "u-1"})

		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
