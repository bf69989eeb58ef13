// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai proxies chat and question-answering to OpenAI, grounding
// every prompt in the portfolio context document. When no API key is
// configured, both operations return deterministic fallback strings
// that point visitors at the static commands instead.
package ai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/awatansh/portfolio-go/internal/model"
)

// Role values for chat transcript messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat transcript. The client owns the full
// history and sends it on every call; the server keeps no state.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Fallback strings returned when no API key is configured or the
// provider fails. User-visible; never blank, never an exception.
const (
	fallbackChatDisabled = "AI chat is currently unavailable. Please configure " +
		"PORTFOLIO_OPENAI_API_KEY to enable AI features. In the meantime, try " +
		"using 'help', 'about', 'projects', or other commands!"
	fallbackAskDisabled = "AI features are currently unavailable. Please configure " +
		"PORTFOLIO_OPENAI_API_KEY. Try using 'about', 'projects', 'skills', or " +
		"'experience' commands instead!"
	fallbackChatError = "Sorry, I encountered an error. Please try again or use " +
		"other commands like 'help', 'about', or 'projects'."
	fallbackAskError = "Sorry, I encountered an error processing your question. " +
		"Please try other commands like 'help', 'about', or 'projects'."
)

const maxResponseTokens = 1000

var errNoChoices = errors.New("completion returned no choices")

// completer is the slice of the OpenAI client the assistant uses,
// extracted so tests can substitute a fake.
type completer interface {
	complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error)
}

// Assistant answers chat and ask requests in the site owner's voice.
type Assistant struct {
	completer completer
	enabled   bool
	logger    *slog.Logger
}

// openaiCompleter calls the real OpenAI chat completions API.
type openaiCompleter struct {
	client openai.Client
	model  openai.ChatModel
}

func (c *openaiCompleter) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            messages,
		MaxCompletionTokens: openai.Int(maxResponseTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// New creates an assistant. An empty apiKey disables the provider and
// switches both operations to their fallback strings.
func New(apiKey, modelName string, logger *slog.Logger) *Assistant {
	a := &Assistant{enabled: apiKey != "", logger: logger}
	if a.enabled {
		a.completer = &openaiCompleter{
			client: openai.NewClient(option.WithAPIKey(apiKey)),
			model:  openai.ChatModel(modelName),
		}
	}
	return a
}

// Chat answers a conversation. The transcript is replayed in full each
// call; the response is the assistant's next turn.
func (a *Assistant) Chat(ctx context.Context, transcript []Message, pc model.PortfolioContext) string {
	if !a.enabled {
		return fallbackChatDisabled
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript)+1)
	messages = append(messages, openai.SystemMessage(BuildContextPrompt(pc)))
	for _, msg := range transcript {
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	response, err := a.completer.complete(ctx, messages)
	if err != nil {
		a.logger.Error("ai chat failed", "error", err, "turns", len(transcript))
		return fallbackChatError
	}
	return response
}

// Ask answers a single question with no conversation history.
func (a *Assistant) Ask(ctx context.Context, question string, pc model.PortfolioContext) string {
	if !a.enabled {
		return fallbackAskDisabled
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(BuildContextPrompt(pc)),
		openai.UserMessage(question),
	}

	response, err := a.completer.complete(ctx, messages)
	if err != nil {
		a.logger.Error("ai ask failed", "error", err)
		return fallbackAskError
	}
	return response
}
