// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/store"
)

// ContextHandler serves the portfolio context document.
type ContextHandler struct {
	queries *store.Queries
	logger  *slog.Logger
}

// NewContextHandler creates a context handler.
func NewContextHandler(db *sql.DB, logger *slog.Logger) *ContextHandler {
	return &ContextHandler{queries: store.New(db), logger: logger}
}

// Get handles GET /api/context. A missing document is served as empty
// defaults, never an error.
func (h *ContextHandler) Get(w http.ResponseWriter, r *http.Request) {
	pc, err := h.queries.GetContext(r.Context())
	if err != nil {
		h.logger.Error("fetching portfolio context", "error", err, "category", model.EventCategoryContext)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch context")
		return
	}
	writeJSON(w, pc)
}

// Update handles POST /api/context/update. Only fields present in the
// body overwrite the stored document: merge semantics, not replace.
// There is no optimistic-concurrency check; the last writer wins.
func (h *ContextHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := h.queries.GetContext(r.Context())
	if err != nil {
		h.logger.Error("loading portfolio context for update", "error", err, "category", model.EventCategoryContext)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update context")
		return
	}

	merged, err := model.MergeContext(current, json.RawMessage(body))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.queries.UpsertContext(r.Context(), merged, time.Now().UTC()); err != nil {
		h.logger.Error("saving portfolio context", "error", err, "category", model.EventCategoryContext)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update context")
		return
	}

	writeJSONSuccess(w, map[string]any{"message": "Context updated"})
}
