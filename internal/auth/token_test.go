package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "unit-test-secret-key-0123456789abcdef"

func TestSessionRoundTrip(t *testing.T) {
	sessions := NewSessions(testSecret)

	token, err := sessions.Issue(Identity{Email: "owner@example.com", Name: "Owner"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	id, err := sessions.Check(token)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if id.Email != "owner@example.com" {
		t.Errorf("email = %q", id.Email)
	}
	if id.Name != "Owner" {
		t.Errorf("name = %q", id.Name)
	}
}

func TestSessionExpiry(t *testing.T) {
	sessions := NewSessions(testSecret)

	issued := time.Now()
	sessions.now = func() time.Time { return issued }
	token, err := sessions.Issue(Identity{Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Just inside the 24h window: still valid.
	sessions.now = func() time.Time { return issued.Add(SessionLifetime - time.Minute) }
	if _, err := sessions.Check(token); err != nil {
		t.Errorf("token should still be valid before expiry: %v", err)
	}

	// Past the window: rejected.
	sessions.now = func() time.Time { return issued.Add(SessionLifetime + time.Minute) }
	if _, err := sessions.Check(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expired token: err = %v, want ErrInvalidSession", err)
	}
}

func TestSessionRejectsTampering(t *testing.T) {
	sessions := NewSessions(testSecret)
	token, err := sessions.Issue(Identity{Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"truncated", token[:len(token)-10]},
		{"flipped payload", tamperPayload(token)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sessions.Check(tt.token); !errors.Is(err, ErrInvalidSession) {
				t.Errorf("Check(%q) err = %v, want ErrInvalidSession", tt.name, err)
			}
		})
	}
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	token, err := NewSessions(testSecret).Issue(Identity{Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewSessions("a-completely-different-signing-key!!")
	if _, err := other.Check(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("foreign-key token: err = %v, want ErrInvalidSession", err)
	}
}

// tamperPayload flips a character in the token's payload segment.
func tamperPayload(token string) string {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 || len(parts[1]) == 0 {
		return token + "x"
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	return parts[0] + "." + string(payload) + "." + parts[2]
}
