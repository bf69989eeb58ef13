package config

import (
	"strings"
	"testing"
)

const validSecret = "a-perfectly-reasonable-32b-secret!!"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORTFOLIO_SESSION_SECRET", validSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != 5000 {
		t.Errorf("ServerPort = %d, want 5000", cfg.ServerPort)
	}
	if cfg.ServerAddr() != "localhost:5000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.AIEnabled() {
		t.Error("AI should be disabled without an API key")
	}
	if cfg.DoSeed {
		t.Error("seeding should default to off")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for short secret")
	}
	if !strings.Contains(err.Error(), "PORTFOLIO_SESSION_SECRET") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestLoadRejectsKnownWeakSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for known weak secret")
	}
}

func TestAllowedEmailsNormalized(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_ADMIN_EMAILS", " Owner@Example.com ,, second@example.com ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := cfg.AllowedEmails()
	want := []string{"owner@example.com", "second@example.com"}
	if len(got) != len(want) {
		t.Fatalf("AllowedEmails = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllowedEmails[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFallbackResumeLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"unset", "", ""},
		{"real link", "https://example.com/resume.pdf", "https://example.com/resume.pdf"},
		{"placeholder one", "https://drive.google.com/file/d/YOUR_GOOGLE_DRIVE_FILE_ID/view", ""},
		{"placeholder two", "https://drive.google.com/file/d/YOUR_ID/view", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ResumeLink: tt.link}
			if got := cfg.FallbackResumeLink(); got != tt.want {
				t.Errorf("FallbackResumeLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
