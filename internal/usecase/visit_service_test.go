package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
)

func TestVisitRecord(t *testing.T) {
	visitRepo := &fakeVisitRepo{}
	svc := NewVisitService(visitRepo)
	now := time.Date(2026, time.March, 3, 18, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if err := svc.Record(context.Background(), "news", "203.0.113.8", "Mozilla/5.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(visitRepo.visits) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(visitRepo.visits))
	}
	got := visitRepo.visits[0]
	if got.PageName != "news" || got.IPAddress != "203.0.113.8" {
		t.Fatalf("unexpected visit: %+v", got)
	}
	if !got.Timestamp.Equal(now) {
		t.Fatalf("unexpected timestamp: %s", got.Timestamp)
	}
}

func TestVisitRecordTruncatesUserAgent(t *testing.T) {
	visitRepo := &fakeVisitRepo{}
	svc := NewVisitService(visitRepo)

	long := strings.Repeat("a", visit.MaxUserAgentLength+100)
	if err := svc.Record(context.Background(), "home", "198.51.100.2", long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(visitRepo.visits[0].UserAgent) != visit.MaxUserAgentLength {
		t.Fatalf("unexpected user agent length: %d", len(visitRepo.visits[0].UserAgent))
	}
}

func TestVisitRecordKeepsUserAgentValidUTF8(t *testing.T) {
	visitRepo := &fakeVisitRepo{}
	svc := NewVisitService(visitRepo)

	// Two-byte runes land one across the byte limit.
	long := strings.Repeat("a", visit.MaxUserAgentLength-1) + "čč"
	if err := svc.Record(context.Background(), "home", "198.51.100.2", long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := visitRepo.visits[0].UserAgent
	if !utf8.ValidString(got) {
		t.Fatalf("user agent is not valid UTF-8: %q", got)
	}
	if len(got) != visit.MaxUserAgentLength-1 {
		t.Fatalf("unexpected user agent length: %d", len(got))
	}
}

func TestVisitRecordRequiresPageName(t *testing.T) {
	svc := NewVisitService(&fakeVisitRepo{})

	err := svc.Record(context.Background(), "  ", "203.0.113.8", "curl/8.0")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
