package service

import (
	"testing"
	"time"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("user_123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	userID, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if userID != "user_123" {
		t.Fatalf("expected user_123, got %q", userID)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("user_123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Move the clock past the expiry window.
	svc.now = func() time.Time { return time.Now().Add(SessionTTL + time.Minute) }

	if _, ok := svc.Verify(token); ok {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret")
	verifier := NewTokenService("other-secret")

	token, err := issuer.Issue("user_123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := verifier.Verify(token); ok {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, ok := svc.Verify(token); ok {
			t.Fatalf("expected %q to fail verification", token)
		}
	}
}
