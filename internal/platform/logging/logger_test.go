package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapFieldsPairs(t *testing.T) {
	fields := zapFields([]any{"page", "news", "count", 3})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "page" || fields[1].Key != "count" {
		t.Fatalf("unexpected keys: %s, %s", fields[0].Key, fields[1].Key)
	}
}

func TestZapFieldsNamesErrors(t *testing.T) {
	fields := zapFields([]any{"error", errors.New("boom")})
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "error" {
		t.Fatalf("unexpected key: %s", fields[0].Key)
	}
}

func TestZapFieldsOddArgs(t *testing.T) {
	fields := zapFields([]any{"orphan"})
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "orphan" {
		t.Fatalf("unexpected key: %s", fields[0].Key)
	}
}

func TestLoggerWritesThroughWith(t *testing.T) {
	core, recorded := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core)).With("component", "calendar")

	logger.Info("events fetched", "count", 4)
	logger.Debug("dropped below level")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "events fetched" {
		t.Fatalf("unexpected message: %s", entries[0].Message)
	}

	fields := entries[0].ContextMap()
	if fields["component"] != "calendar" {
		t.Fatalf("unexpected component field: %v", fields["component"])
	}
	if fields["count"] != int64(4) {
		t.Fatalf("unexpected count field: %v", fields["count"])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	if err := logger.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
