// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/awatansh/portfolio-go/internal/auth"
	"github.com/awatansh/portfolio-go/internal/middleware"
	"github.com/awatansh/portfolio-go/internal/model"
)

// IdentityVerifier checks a Google ID token against the allow-list.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, credential string) (auth.Identity, error)
}

// AuthHandler exchanges Google credentials for admin session tokens.
type AuthHandler struct {
	verifier IdentityVerifier
	sessions *auth.Sessions
	logger   *slog.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(verifier IdentityVerifier, sessions *auth.Sessions, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{verifier: verifier, sessions: sessions, logger: logger}
}

type googleLoginRequest struct {
	Credential string `json:"credential"`
}

// Google handles POST /api/auth/google. An email outside the allow-list
// is rejected distinctly from a malformed or unverifiable token.
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := decodeJSON(r, &req); err != nil || req.Credential == "" {
		writeJSONError(w, http.StatusBadRequest, "Google credential is required")
		return
	}

	id, err := h.verifier.VerifyIdentity(r.Context(), req.Credential)
	switch {
	case errors.Is(err, auth.ErrNotAllowed):
		h.logger.Warn("login rejected: email not allowed", "category", model.EventCategoryAuth)
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Your email is not in the allowed list")
		return
	case err != nil:
		h.logger.Warn("login rejected: credential verification failed", "error", err, "category", model.EventCategoryAuth)
		writeJSONError(w, http.StatusUnauthorized, "Failed to verify Google token")
		return
	}

	token, err := h.sessions.Issue(id)
	if err != nil {
		h.logger.Error("issuing session token", "error", err, "category", model.EventCategoryAuth)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Info("admin login", "email", id.Email, "category", model.EventCategoryAuth)
	writeJSONSuccess(w, map[string]any{
		"token": token,
		"user": map[string]string{
			"email": id.Email,
			"name":  id.Name,
		},
		"message": "Login successful",
	})
}

// Verify handles GET /api/auth/verify behind RequireSession.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Invalid or expired token")
		return
	}
	writeJSON(w, map[string]any{
		"authenticated": true,
		"user": map[string]string{
			"email": id.Email,
			"name":  id.Name,
		},
	})
}

// Logout handles POST /api/auth/logout. Sessions are stateless, so
// logout is just the client discarding its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSONSuccess(w, map[string]any{"message": "Logged out"})
}
