// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/store"
)

// ContactHandler manages contact-form submissions.
type ContactHandler struct {
	queries   *store.Queries
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewContactHandler creates a contact handler. Submitted text is run
// through a strict HTML sanitizer before storage.
func NewContactHandler(db *sql.DB, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		queries:   store.New(db),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

type submitRequest struct {
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	Message      string `json:"message"`
	SocialHandle string `json:"socialHandle"`
}

// Submit handles POST /api/contact/submit. Name, designation, and
// message are required; the social handle is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = h.clean(req.Name)
	req.Designation = h.clean(req.Designation)
	req.Message = h.clean(req.Message)
	req.SocialHandle = h.clean(req.SocialHandle)

	if req.Name == "" || req.Designation == "" || req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	submission, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Designation:  req.Designation,
		Message:      req.Message,
		SocialHandle: req.SocialHandle,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("storing contact submission", "error", err, "category", model.EventCategoryContact)
		writeJSONError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	h.logger.Info("contact submission received", "id", submission.ID)
	writeJSONSuccess(w, map[string]any{
		"message":      "Thanks for reaching out! I'll get back to you soon.",
		"submissionId": submission.ID,
	})
}

// List handles GET /api/contact/submissions, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.queries.ListContacts(r.Context())
	if err != nil {
		h.logger.Error("listing contact submissions", "error", err, "category", model.EventCategoryContact)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	writeJSON(w, submissions)
}

// MarkRead handles PATCH /api/contact/{id}/read. The read flag is
// settable to true only.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	affected, err := h.queries.MarkContactRead(r.Context(), id)
	if err != nil {
		h.logger.Error("marking contact submission read", "error", err, "id", id, "category", model.EventCategoryContact)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update submission")
		return
	}
	if affected == 0 {
		writeJSONError(w, http.StatusNotFound, "Submission not found")
		return
	}
	writeJSONSuccess(w, nil)
}

// Delete handles DELETE /api/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	affected, err := h.queries.DeleteContact(r.Context(), id)
	if err != nil {
		h.logger.Error("deleting contact submission", "error", err, "id", id, "category", model.EventCategoryContact)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	if affected == 0 {
		writeJSONError(w, http.StatusNotFound, "Submission not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Submission deleted"})
}

func (h *ContactHandler) clean(s string) string {
	return strings.TrimSpace(h.sanitizer.Sanitize(s))
}
