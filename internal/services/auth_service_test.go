package services

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T, now func() time.Time) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return AuthService{Username: "admin", PasswordHash: string(hash), Secret: []byte("test-secret"), TTL: time.Hour, Now: now}
}

func TestAuthServiceIssueAndParse(t *testing.T) {
	auth := newAuth(t, nil)

	token, exp, err := auth.Issue("admin", "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry in the past: %v", exp)
	}
	role, err := auth.Parse(token)
	if err != nil || role != AdminRole {
		t.Fatalf("Parse = %q, %v", role, err)
	}
}

func TestAuthServiceRejects(t *testing.T) {
	auth := newAuth(t, nil)

	if _, _, err := auth.Issue("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := auth.Issue("root", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := auth.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	other := auth
	other.Secret = []byte("other")
	token, _, err := other.Issue("admin", "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected signature mismatch to fail, got %v", err)
	}
}

func TestAuthServiceExpiredToken(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := newAuth(t, past).Issue("admin", "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := newAuth(t, nil).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}
}

func TestAuthServiceDisabled(t *testing.T) {
	var auth AuthService
	if auth.Enabled() {
		t.Fatalf("zero AuthService must be disabled")
	}
	if _, _, err := auth.Issue("admin", "x"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected disabled, got %v", err)
	}
}
