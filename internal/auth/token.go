// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth implements admin authentication: Google ID-token
// verification against an email allow-list and stateless signed
// session tokens. There is no server-side session state and no
// revocation; logout is a client-side token discard.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionLifetime is the fixed validity window of a session token.
const SessionLifetime = 24 * time.Hour

// ErrInvalidSession is returned for malformed, tampered, or expired
// session tokens.
var ErrInvalidSession = errors.New("invalid or expired session token")

// Identity is the admin identity carried by a session token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims is the session token payload.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies session tokens with a shared HMAC secret.
type Sessions struct {
	secret []byte
	now    func() time.Time
}

// NewSessions creates a session token issuer/verifier.
func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), now: time.Now}
}

// Issue signs a session token for the given identity, valid for
// SessionLifetime from now.
func (s *Sessions) Issue(id Identity) (string, error) {
	now := s.now()
	claims := &Claims{
		Name: id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionLifetime)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Check verifies a session token's signature and expiry and returns
// the identity it carries. Any failure maps to ErrInvalidSession.
func (s *Sessions) Check(tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidSession
	}

	return Identity{Email: claims.Subject, Name: claims.Name}, nil
}
