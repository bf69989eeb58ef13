// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/awatansh/portfolio-go/internal/ai"
	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/store"
)

// Answerer is the slice of the AI assistant the chat endpoints use.
type Answerer interface {
	Chat(ctx context.Context, transcript []ai.Message, pc model.PortfolioContext) string
	Ask(ctx context.Context, question string, pc model.PortfolioContext) string
}

// ChatHandler proxies chat and ask requests to the AI assistant,
// grounding each call in the stored portfolio context.
type ChatHandler struct {
	queries   *store.Queries
	assistant Answerer
	logger    *slog.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(db *sql.DB, assistant Answerer, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{queries: store.New(db), assistant: assistant, logger: logger}
}

type chatRequest struct {
	Messages []ai.Message `json:"messages"`
}

// Chat handles POST /api/chat. The client sends its full transcript on
// every call; the server keeps no chat state.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil || req.Messages == nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	pc, err := h.queries.GetContext(r.Context())
	if err != nil {
		h.logger.Error("loading context for chat", "error", err, "category", model.EventCategoryAI)
		writeJSONError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	response := h.assistant.Chat(r.Context(), req.Messages, pc)
	writeJSON(w, map[string]any{"response": response})
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask handles POST /api/chat/ask: a one-shot question with no history.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeJSON(r, &req); err != nil || req.Question == "" {
		writeJSONError(w, http.StatusBadRequest, "Question is required")
		return
	}

	pc, err := h.queries.GetContext(r.Context())
	if err != nil {
		h.logger.Error("loading context for ask", "error", err, "category", model.EventCategoryAI)
		writeJSONError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	response := h.assistant.Ask(r.Context(), req.Question, pc)
	writeJSON(w, map[string]any{"response": response})
}
