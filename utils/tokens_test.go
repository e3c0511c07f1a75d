package utils

import (
	"errors"
	"testing"
	"time"

	"maxdata/internal/models"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := m.NewJWT("agent-7", models.RoleAgent, time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "agent-7" || claims.Role != models.RoleAgent {
		t.Fatalf("unexpected claims %#v", claims)
	}
}

func TestManagerRejectsBadTokens(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
	m, _ := NewManager("secret")
	other, _ := NewManager("other")

	token, _ := other.NewJWT("agent-7", models.RoleAgent, time.Hour)
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	expired, _ := m.NewJWT("agent-7", models.RoleAgent, -time.Minute)
	if _, err := m.Parse(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestConfirmationCode(t *testing.T) {
	code := ConfirmationCode()
	if len(code) != 6 {
		t.Fatalf("expected six digits, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q", code)
		}
	}
}
