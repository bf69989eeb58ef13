// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/awatansh/portfolio-go/internal/auth"
	"github.com/awatansh/portfolio-go/internal/middleware"
)

// RouterConfig wires the API router to its collaborators.
type RouterConfig struct {
	DB        *sql.DB
	Assistant Answerer
	Verifier  IdentityVerifier
	Sessions  *auth.Sessions
	Logger    *slog.Logger
	// AllowedOrigin is the frontend origin for CORS.
	AllowedOrigin string
	// PublicLimiter rate-limits the unauthenticated write endpoints.
	// Nil disables limiting (tests).
	PublicLimiter *middleware.RateLimiter
}

// NewRouter assembles the full API surface.
func NewRouter(cfg RouterConfig) http.Handler {
	contextHandler := NewContextHandler(cfg.DB, cfg.Logger)
	chatHandler := NewChatHandler(cfg.DB, cfg.Assistant, cfg.Logger)
	contactHandler := NewContactHandler(cfg.DB, cfg.Logger)
	authHandler := NewAuthHandler(cfg.Verifier, cfg.Sessions, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.DB)

	requireSession := middleware.RequireSession(cfg.Sessions)
	limited := func(next http.HandlerFunc) http.Handler {
		if cfg.PublicLimiter == nil {
			return next
		}
		return cfg.PublicLimiter.Middleware()(next)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.AllowedOrigin))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Get("/context", contextHandler.Get)
		r.With(requireSession).Post("/context/update", contextHandler.Update)

		r.Method(http.MethodPost, "/chat", limited(chatHandler.Chat))
		r.Method(http.MethodPost, "/chat/ask", limited(chatHandler.Ask))

		r.Route("/contact", func(r chi.Router) {
			r.Method(http.MethodPost, "/submit", limited(contactHandler.Submit))
			r.With(requireSession).Get("/submissions", contactHandler.List)
			r.With(requireSession).Patch("/{id}/read", contactHandler.MarkRead)
			r.With(requireSession).Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Method(http.MethodPost, "/google", limited(authHandler.Google))
			r.With(requireSession).Get("/verify", authHandler.Verify)
			r.Post("/logout", authHandler.Logout)
		})
	})

	return r
}
