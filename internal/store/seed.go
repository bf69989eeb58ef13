// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Seed creates the initial portfolio context document when seeding is
// enabled and no document exists yet. The API serves defaults for a
// missing row either way; seeding just makes the document visible to
// the admin editor from the start.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}

	queries := New(db)

	var existing string
	err := db.QueryRowContext(ctx,
		`SELECT id FROM portfolio_context WHERE id = ?`, ContextKey,
	).Scan(&existing)
	if err == nil {
		slog.Info("portfolio context already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for portfolio context: %w", err)
	}

	if err := queries.UpsertContext(ctx, DefaultSeedContext(), time.Now()); err != nil {
		return fmt.Errorf("seeding portfolio context: %w", err)
	}

	slog.Info("seeded default portfolio context")
	return nil
}
