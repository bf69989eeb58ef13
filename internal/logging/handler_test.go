package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/store"
	"github.com/awatansh/portfolio-go/internal/testutil"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func recentEvents(t *testing.T, q *store.Queries) []model.Event {
	t.Helper()
	events, err := q.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	return events
}

func TestEventLogHandlerErrorLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Error("database connection failed", "path", "./data/portfolio.db")

	events := recentEvents(t, store.New(db))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Level != model.EventLevelError {
		t.Errorf("level = %q, want %q", ev.Level, model.EventLevelError)
	}
	if ev.Message != "database connection failed" {
		t.Errorf("message = %q", ev.Message)
	}
	if ev.Metadata == "{}" {
		t.Error("attributes should be captured as metadata")
	}
}

func TestEventLogHandlerInfoNotPersisted(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Info("server started", "addr", ":5000")

	if events := recentEvents(t, store.New(db)); len(events) != 0 {
		t.Fatalf("info logs should not reach the event log, got %d", len(events))
	}
}

func TestEventLogHandlerExplicitCategory(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Warn("token rejected", "category", model.EventCategoryAuth)

	events := recentEvents(t, store.New(db))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Category != model.EventCategoryAuth {
		t.Errorf("category = %q, want %q", events[0].Category, model.EventCategoryAuth)
	}
}

func TestExtractCategoryInference(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"login attempt rejected", model.EventCategoryAuth},
		{"contact submission failed", model.EventCategoryContact},
		{"portfolio context update failed", model.EventCategoryContext},
		{"ai chat failed", model.EventCategoryAI},
		{"disk nearly full", model.EventCategorySystem},
	}

	for _, tt := range tests {
		r := slog.NewRecord(time.Now(), slog.LevelWarn, tt.message, 0)
		if got := extractCategory(r); got != tt.want {
			t.Errorf("extractCategory(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
