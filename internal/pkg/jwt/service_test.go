package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestHMACService_AccessRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newTestService(now)
	id := uuid.New()

	tok, err := s.GenerateAccessToken(id, "a@example.com", "employer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	c, err := s.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.UserID != id || c.Email != "a@example.com" || c.Role != "employer" || c.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims %+v", c)
	}
}

func TestHMACService_TokenTypesAreNotInterchangeable(t *testing.T) {
	s := newTestService(time.Now())
	id := uuid.New()

	access, _ := s.GenerateAccessToken(id, "a@example.com", "job_seeker")
	refresh, _ := s.GenerateRefreshToken(id)

	if _, err := s.ValidateAccessToken(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token accepted as access: %v", err)
	}
	if _, err := s.ValidateRefreshToken(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token accepted as refresh: %v", err)
	}
	if c, err := s.ValidateRefreshToken(refresh); err != nil || c.UserID != id {
		t.Fatalf("refresh validate = %+v, %v", c, err)
	}
}

func TestHMACService_Expired(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newTestService(issued)
	tok, _ := s.GenerateAccessToken(uuid.New(), "a@example.com", "employer")

	s.now = func() time.Time { return issued.Add(time.Hour) }
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_RejectsGarbageAndForeignSecret(t *testing.T) {
	s := newTestService(time.Now())
	if _, err := s.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	other := NewHMACService("other", "other-refresh", time.Minute, time.Hour)
	tok, _ := other.GenerateAccessToken(uuid.New(), "", "employer")
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for foreign secret, got %v", err)
	}
}
