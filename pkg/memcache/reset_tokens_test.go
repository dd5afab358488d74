package memcache

import (
	"testing"
	"time"
)

func TestConsumeIsSingleUse(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "jane@example.com", time.Minute)

	if got := s.Consume("tok"); got != "jane@example.com" {
		t.Fatalf("first consume: %q", got)
	}
	if got := s.Consume("tok"); got != "" {
		t.Fatalf("second consume should fail: %q", got)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "jane@example.com", -time.Second)

	if _, ok := s.Peek("tok"); ok {
		t.Fatalf("peek should not see an expired token")
	}
	if got := s.Consume("tok"); got != "" {
		t.Fatalf("consume should reject an expired token: %q", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "jane@example.com", time.Minute)

	if email, ok := s.Peek("tok"); !ok || email != "jane@example.com" {
		t.Fatalf("peek: %q %v", email, ok)
	}
	if got := s.Consume("tok"); got != "jane@example.com" {
		t.Fatalf("consume after peek: %q", got)
	}
}

func TestUnknownToken(t *testing.T) {
	s := NewResetTokens()
	if got := s.Consume("missing"); got != "" {
		t.Fatalf("unknown token consumed: %q", got)
	}
}
