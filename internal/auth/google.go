// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// Google's ID token introspection endpoint
	tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	// Timeout for verification requests
	verifyTimeout = 10 * time.Second
)

// ErrBadCredential is returned when the Google credential is missing,
// malformed, or fails verification.
var ErrBadCredential = errors.New("invalid Google credential")

// ErrNotAllowed is returned when the credential verifies but the email
// is not on the admin allow-list. Kept distinct from ErrBadCredential
// so handlers can report the two cases differently.
var ErrNotAllowed = errors.New("email is not in the allowed list")

// tokenInfo is the subset of Google's tokeninfo response we use.
type tokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Expires       string `json:"exp"`
}

// Verifier validates Google ID tokens against the configured OAuth
// client and an email allow-list.
type Verifier struct {
	clientID string
	allowed  []string
	client   *http.Client
	baseURL  string
}

// NewVerifier creates a Google credential verifier. allowedEmails must
// already be normalized to lowercase.
func NewVerifier(clientID string, allowedEmails []string) *Verifier {
	return &Verifier{
		clientID: clientID,
		allowed:  allowedEmails,
		client:   &http.Client{Timeout: verifyTimeout},
		baseURL:  tokenInfoURL,
	}
}

// NewVerifierWithEndpoint is like NewVerifier with a custom tokeninfo
// endpoint, for tests.
func NewVerifierWithEndpoint(clientID string, allowedEmails []string, endpoint string) *Verifier {
	v := NewVerifier(clientID, allowedEmails)
	v.baseURL = endpoint
	return v
}

// VerifyIdentity checks a Google ID token and returns the identity it
// asserts. The email must verify with Google, match the configured
// client ID, and appear on the allow-list.
func (v *Verifier) VerifyIdentity(ctx context.Context, credential string) (Identity, error) {
	if credential == "" {
		return Identity{}, ErrBadCredential
	}

	info, err := v.fetchTokenInfo(ctx, credential)
	if err != nil {
		return Identity{}, err
	}

	if info.Email == "" || info.EmailVerified != "true" {
		return Identity{}, ErrBadCredential
	}
	if v.clientID != "" && info.Audience != v.clientID {
		return Identity{}, ErrBadCredential
	}

	email := strings.ToLower(info.Email)
	if !v.isAllowed(email) {
		return Identity{}, ErrNotAllowed
	}

	name := info.Name
	if name == "" {
		name = info.Email
	}
	return Identity{Email: email, Name: name}, nil
}

// fetchTokenInfo asks Google to introspect the credential. A non-200
// response means the token is malformed or expired.
func (v *Verifier) fetchTokenInfo(ctx context.Context, credential string) (*tokenInfo, error) {
	reqURL := v.baseURL + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrBadCredential
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("parsing tokeninfo response: %w", err)
	}
	return &info, nil
}

func (v *Verifier) isAllowed(email string) bool {
	for _, a := range v.allowed {
		if a == email {
			return true
		}
	}
	return false
}
