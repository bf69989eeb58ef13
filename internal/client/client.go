// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package client is a typed HTTP client for the portfolio API. It
// satisfies the terminal engine's effect interfaces, so a terminal
// session can run against a remote backend, and covers the admin
// operations for tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/terminal"
)

const requestTimeout = 30 * time.Second

// Client talks to one portfolio backend. Safe for concurrent use once
// configured; SetToken is not synchronized with in-flight calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// The terminal engine hosts sessions against this client directly.
var (
	_ terminal.Submitter = (*Client)(nil)
	_ terminal.Assistant = (*Client)(nil)
)

// New creates a client for the given base URL, e.g.
// "http://localhost:5000". All calls retry once on a connection
// failure or 5xx response.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   requestTimeout,
			Transport: &retryTransport{next: http.DefaultTransport},
		},
	}
}

// SetToken attaches an admin session token to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// GetContext fetches the portfolio context document.
func (c *Client) GetContext(ctx context.Context) (model.PortfolioContext, error) {
	var pc model.PortfolioContext
	err := c.do(ctx, http.MethodGet, "/api/context", nil, &pc)
	return pc, err
}

// UpdateContext applies a partial update to the context document.
// Only the fields present in partial overwrite; admin only.
func (c *Client) UpdateContext(ctx context.Context, partial any) error {
	return c.do(ctx, http.MethodPost, "/api/context/update", partial, nil)
}

// SubmitContact delivers a completed contact form and returns the
// server's acknowledgement message.
func (c *Client) SubmitContact(ctx context.Context, form terminal.ContactForm) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact/submit", form, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Chat sends the full chat transcript and returns the next assistant
// turn.
func (c *Client) Chat(ctx context.Context, transcript []terminal.ChatMessage) (string, error) {
	body := map[string]any{"messages": transcript}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Ask sends a one-shot question.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body := map[string]string{"question": question}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/chat/ask", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// LoginWithGoogle exchanges a Google ID token for a session token and
// installs it on the client.
func (c *Client) LoginWithGoogle(ctx context.Context, credential string) (string, error) {
	body := map[string]string{"credential": credential}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/google", body, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// ListSubmissions returns all contact submissions, newest first.
// Admin only.
func (c *Client) ListSubmissions(ctx context.Context) ([]model.ContactSubmission, error) {
	var submissions []model.ContactSubmission
	err := c.do(ctx, http.MethodGet, "/api/contact/submissions", nil, &submissions)
	return submissions, err
}

// MarkSubmissionRead marks one submission read. Admin only.
func (c *Client) MarkSubmissionRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/api/contact/"+id+"/read", nil, nil)
}

// DeleteSubmission deletes one submission. Admin only.
func (c *Client) DeleteSubmission(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil)
}

// do performs one JSON request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
