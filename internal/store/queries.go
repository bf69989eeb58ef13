// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/awatansh/portfolio-go/internal/model"
)

// ContextKey is the fixed primary key of the singleton portfolio
// context row.
const ContextKey = "portfolio_data"

// DBTX is the subset of *sql.DB and *sql.Tx used by Queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries wraps a database handle with typed query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance backed by the given handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// GetContext returns the portfolio context document. A missing row is
// not an error: the default context is returned instead.
func (q *Queries) GetContext(ctx context.Context) (model.PortfolioContext, error) {
	var doc string
	err := q.db.QueryRowContext(ctx,
		`SELECT document FROM portfolio_context WHERE id = ?`, ContextKey,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return model.DefaultContext(), nil
	}
	if err != nil {
		return model.PortfolioContext{}, fmt.Errorf("querying context: %w", err)
	}

	var pc model.PortfolioContext
	if err := json.Unmarshal([]byte(doc), &pc); err != nil {
		return model.PortfolioContext{}, fmt.Errorf("decoding context document: %w", err)
	}
	return pc, nil
}

// UpsertContext writes the full context document, creating the row if
// it does not exist. The caller is responsible for merge semantics;
// this is a plain last-writer-wins overwrite.
func (q *Queries) UpsertContext(ctx context.Context, pc model.PortfolioContext, now time.Time) error {
	doc, err := json.Marshal(pc)
	if err != nil {
		return fmt.Errorf("encoding context document: %w", err)
	}

	_, err = q.db.ExecContext(ctx, `
		INSERT INTO portfolio_context (id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		ContextKey, string(doc), now,
	)
	if err != nil {
		return fmt.Errorf("upserting context: %w", err)
	}
	return nil
}

// CreateContactParams holds the fields for a new contact submission.
type CreateContactParams struct {
	ID           string
	Name         string
	Designation  string
	Message      string
	SocialHandle string
	CreatedAt    time.Time
}

// CreateContact inserts a contact submission with read=false.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (model.ContactSubmission, error) {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, designation, message, social_handle, created_at, read)
		VALUES (?, ?, ?, ?, ?, ?, 0)`,
		arg.ID, arg.Name, arg.Designation, arg.Message, arg.SocialHandle, arg.CreatedAt,
	)
	if err != nil {
		return model.ContactSubmission{}, fmt.Errorf("inserting contact: %w", err)
	}

	return model.ContactSubmission{
		ID:           arg.ID,
		Name:         arg.Name,
		Designation:  arg.Designation,
		Message:      arg.Message,
		SocialHandle: arg.SocialHandle,
		CreatedAt:    arg.CreatedAt,
		Read:         false,
	}, nil
}

// ListContacts returns all contact submissions, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, designation, message, social_handle, created_at, read
		FROM contacts
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	subs := []model.ContactSubmission{}
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Designation, &s.Message,
			&s.SocialHandle, &s.CreatedAt, &s.Read); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// MarkContactRead sets the read flag on a submission. Returns the
// number of rows matched so callers can distinguish not-found.
func (q *Queries) MarkContactRead(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE contacts SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("marking contact read: %w", err)
	}
	return res.RowsAffected()
}

// DeleteContact removes a submission. Returns rows deleted.
func (q *Queries) DeleteContact(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting contact: %w", err)
	}
	return res.RowsAffected()
}

// DeleteContactsCreatedBefore removes submissions older than the
// cutoff. Used by the retention sweep.
func (q *Queries) DeleteContactsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM contacts WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweeping contacts: %w", err)
	}
	return res.RowsAffected()
}

// CreateEventParams holds the fields for a new event log entry.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent inserts an event log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	if arg.Metadata == "" {
		arg.Metadata = "{}"
	}
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.Metadata, arg.CreatedAt,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("inserting event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, fmt.Errorf("event id: %w", err)
	}

	return model.Event{
		ID:        id,
		Level:     arg.Level,
		Category:  arg.Category,
		Message:   arg.Message,
		Metadata:  arg.Metadata,
		CreatedAt: arg.CreatedAt,
	}, nil
}

// ListRecentEvents returns the most recent event log entries.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, metadata, created_at
		FROM events
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
