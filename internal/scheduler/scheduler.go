// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs background maintenance: the daily retention
// sweep that deletes contact submissions past their one-year window.
package scheduler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/store"
)

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the daily retention sweep and begins the cron loop.
// The sweep also runs once at startup so a long-stopped instance
// catches up immediately.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.sweepExpiredContacts(); err != nil {
			s.logger.Error("contact retention sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))

	go func() {
		if err := s.sweepExpiredContacts(); err != nil {
			s.logger.Error("startup contact retention sweep failed", "error", err)
		}
	}()
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// sweepExpiredContacts deletes contact submissions older than the
// retention window. The sweep has no interaction with in-flight
// requests; SQLite serializes the delete.
func (s *Scheduler) sweepExpiredContacts() error {
	ctx := context.Background()
	queries := store.New(s.db)

	now := time.Now().UTC()
	cutoff := now.Add(-model.ContactRetention)

	deleted, err := queries.DeleteContactsCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return nil
	}

	s.logger.Info("contact retention sweep removed submissions", "count", deleted)

	metadata, _ := json.Marshal(map[string]any{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.RFC3339),
	})
	if _, err := queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     model.EventLevelInfo,
		Category:  model.EventCategoryContact,
		Message:   "Expired contact submissions removed by retention sweep",
		Metadata:  string(metadata),
		CreatedAt: now,
	}); err != nil {
		s.logger.Warn("failed to log retention sweep event", "error", err)
	}
	return nil
}
