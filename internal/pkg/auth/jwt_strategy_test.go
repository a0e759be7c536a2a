package auth

import (
	"testing"
	"time"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})

	token, err := s.IssueToken(42, AudienceUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, audience, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != 42 {
		t.Fatalf("expected subject 42, got %d", subject)
	}
	if audience != AudienceUser {
		t.Fatalf("expected user audience, got %q", audience)
	}
}

func TestJWTStrategySellerAudience(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})

	token, err := s.IssueToken(0, AudienceSeller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, audience, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audience != AudienceSeller {
		t.Fatalf("expected seller audience, got %q", audience)
	}
}

func TestJWTStrategyRejectsForeignSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{})
	verifier := NewJWTStrategy("secret-b", Options{})

	token, err := issuer.IssueToken(1, AudienceUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsExpiredToken(t *testing.T) {
	s := NewJWTStrategy("secret", Options{TTL: -time.Minute})

	token, err := s.IssueToken(1, AudienceUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})
	if _, _, err := s.ParseToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected name %q", got)
	}
}
