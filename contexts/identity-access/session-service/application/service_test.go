package application

import (
	"errors"
	"testing"
	"time"

	"admarket/contexts/identity-access/session-service/domain/entities"
	domainerrors "admarket/contexts/identity-access/session-service/domain/errors"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Issue(entities.Session{UserID: "user-1", Role: entities.RolePublisher}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	session, err := service.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if session.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", session.UserID)
	}
	if session.Role != entities.RolePublisher {
		t.Fatalf("expected publisher role, got %q", session.Role)
	}
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	if _, err := service.Verify(""); !errors.Is(err, domainerrors.ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(entities.Session{UserID: "user-1", Role: entities.RoleAdvertiser}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Issue(entities.Session{UserID: "user-1", Role: entities.RoleAdmin}, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := service.Verify(token); !errors.Is(err, domainerrors.ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestIssueRejectsUnknownRole(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	if _, err := service.Issue(entities.Session{UserID: "user-1", Role: "auditor"}, time.Now()); err == nil {
		t.Fatal("expected error for unsupported role")
	}
}
