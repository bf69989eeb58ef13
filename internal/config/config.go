// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// resumeLinkPlaceholders are template values shipped in example env
// files; the resume command ignores them when resolving its link.
var resumeLinkPlaceholders = []string{
	"https://drive.google.com/file/d/YOUR_GOOGLE_DRIVE_FILE_ID/view",
	"https://drive.google.com/file/d/YOUR_ID/view",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	SessionSecret string `env:"PORTFOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"5000"`
	Env           string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`

	// CORS origin of the SPA frontend
	FrontendURL string `env:"PORTFOLIO_FRONTEND_URL" envDefault:"http://localhost:5173"`

	// Auth configuration
	GoogleClientID string   `env:"PORTFOLIO_GOOGLE_CLIENT_ID"`
	AdminEmails    []string `env:"PORTFOLIO_ADMIN_EMAILS" envSeparator:","`

	// AI configuration
	OpenAIAPIKey string `env:"PORTFOLIO_OPENAI_API_KEY"`
	OpenAIModel  string `env:"PORTFOLIO_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Fallback resume link used when the context document has none
	ResumeLink string `env:"PORTFOLIO_RESUME_LINK"`

	// Seeding configuration
	DoSeed bool `env:"PORTFOLIO_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// AIEnabled returns true if an OpenAI API key is configured.
func (c Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// AllowedEmails returns the admin allow-list normalized to lowercase
// with whitespace and empty entries removed.
func (c Config) AllowedEmails() []string {
	emails := make([]string, 0, len(c.AdminEmails))
	for _, e := range c.AdminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// FallbackResumeLink returns the configured resume link, or empty when
// unset or still a known placeholder value.
func (c Config) FallbackResumeLink() string {
	for _, placeholder := range resumeLinkPlaceholders {
		if c.ResumeLink == placeholder {
			return ""
		}
	}
	return c.ResumeLink
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	return cfg, nil
}
