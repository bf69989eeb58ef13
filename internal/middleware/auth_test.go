package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/awatansh/portfolio-go/internal/auth"
)

const testSecret = "middleware-test-secret-key-abcdef01"

func protectedHandler(t *testing.T, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := GetIdentity(r)
		if id == nil {
			t.Error("identity missing from context in protected handler")
		} else if id.Email != wantEmail {
			t.Errorf("identity email = %q, want %q", id.Email, wantEmail)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession(t *testing.T) {
	sessions := auth.NewSessions(testSecret)
	token, err := sessions.Issue(auth.Identity{Email: "owner@example.com", Name: "Owner"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	handler := RequireSession(sessions)(protectedHandler(t, "owner@example.com"))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"case-insensitive scheme", "bearer " + token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/contact/submissions", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetIdentityWithoutSession(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetIdentity(r) != nil {
		t.Error("GetIdentity should return nil outside RequireSession")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS("http://localhost:5173")(next)

	t.Run("allowed origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/context", nil)
		r.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/api/context", nil)
		r.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Errorf("preflight status = %d, want 204", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("preflight missing Allow-Methods")
		}
	})

	t.Run("foreign origin gets no headers", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/context", nil)
		r.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("foreign origin allowed: %q", got)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2) // 1 rps, burst 2
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware()(next)

	send := func(ip string) int {
		r := httptest.NewRequest(http.MethodPost, "/api/contact/submit", nil)
		r.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	if send("10.0.0.1") != http.StatusOK || send("10.0.0.1") != http.StatusOK {
		t.Fatal("burst requests should pass")
	}
	if send("10.0.0.1") != http.StatusTooManyRequests {
		t.Error("third immediate request should be limited")
	}
	// A different client is unaffected.
	if send("10.0.0.2") != http.StatusOK {
		t.Error("second client should not share the first client's budget")
	}
}
