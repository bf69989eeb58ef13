package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeTokenInfo serves a canned tokeninfo response for any credential.
func fakeTokenInfo(t *testing.T, status int, info map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") == "" {
			t.Error("id_token query parameter missing")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(info)
	}))
}

func TestVerifyIdentityAllowed(t *testing.T) {
	srv := fakeTokenInfo(t, http.StatusOK, map[string]string{
		"aud": "client-123", "email": "Owner@Example.com",
		"email_verified": "true", "name": "Site Owner",
	})
	defer srv.Close()

	v := NewVerifierWithEndpoint("client-123", []string{"owner@example.com"}, srv.URL)
	id, err := v.VerifyIdentity(context.Background(), "credential")
	if err != nil {
		t.Fatalf("VerifyIdentity: %v", err)
	}
	if id.Email != "owner@example.com" {
		t.Errorf("email should be normalized lowercase, got %q", id.Email)
	}
	if id.Name != "Site Owner" {
		t.Errorf("name = %q", id.Name)
	}
}

func TestVerifyIdentityNotAllowed(t *testing.T) {
	srv := fakeTokenInfo(t, http.StatusOK, map[string]string{
		"aud": "client-123", "email": "stranger@example.com",
		"email_verified": "true",
	})
	defer srv.Close()

	v := NewVerifierWithEndpoint("client-123", []string{"owner@example.com"}, srv.URL)
	_, err := v.VerifyIdentity(context.Background(), "credential")
	if !errors.Is(err, ErrNotAllowed) {
		t.Errorf("err = %v, want ErrNotAllowed", err)
	}
}

func TestVerifyIdentityBadCredential(t *testing.T) {
	tests := []struct {
		name   string
		status int
		info   map[string]string
	}{
		{"rejected by google", http.StatusBadRequest, map[string]string{"error": "invalid_token"}},
		{"unverified email", http.StatusOK, map[string]string{
			"aud": "client-123", "email": "owner@example.com", "email_verified": "false"}},
		{"missing email", http.StatusOK, map[string]string{
			"aud": "client-123", "email_verified": "true"}},
		{"audience mismatch", http.StatusOK, map[string]string{
			"aud": "someone-else", "email": "owner@example.com", "email_verified": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeTokenInfo(t, tt.status, tt.info)
			defer srv.Close()

			v := NewVerifierWithEndpoint("client-123", []string{"owner@example.com"}, srv.URL)
			_, err := v.VerifyIdentity(context.Background(), "credential")
			if !errors.Is(err, ErrBadCredential) {
				t.Errorf("err = %v, want ErrBadCredential", err)
			}
			if errors.Is(err, ErrNotAllowed) {
				t.Error("bad credential must not be reported as allow-list rejection")
			}
		})
	}
}

func TestVerifyIdentityEmptyCredential(t *testing.T) {
	v := NewVerifier("client-123", []string{"owner@example.com"})
	if _, err := v.VerifyIdentity(context.Background(), ""); !errors.Is(err, ErrBadCredential) {
		t.Errorf("err = %v, want ErrBadCredential", err)
	}
}
