package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "caretide-test",
		Audience:   "caretide-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	return m
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueAccess(userID, "doctor", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %q, want %q", claims.Role, "doctor")
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.Issuer != "caretide-test" {
		t.Errorf("Issuer = %q, want caretide-test", claims.Issuer)
	}
	if claims.IsExpired() {
		t.Error("fresh access token reported as expired")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueRefresh(userID, "nurse", &sessionID)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.Role != "nurse" {
		t.Errorf("Role = %q, want %q", claims.Role, "nurse")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("v4.local.not-a-real-token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, err := m.Verify(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m1 := newTestManager(t)
	m2 := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	tok, err := m1.IssueAccess(userID, "admin", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := m2.Verify(tok); err == nil {
		t.Error("expected verification to fail under a different key")
	}
}

func TestTokenWithoutSession(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	tok, err := m.IssueAccess(userID, "admin", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
}
