package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
)

func TestCalendarPageUnconfigured(t *testing.T) {
	fetcher := &fakeEventsFetcher{}
	svc := NewCalendarService(&fakeCalendarSettingsRepo{}, &fakeEventRepo{}, fetcher)

	page, err := svc.Page(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Configured {
		t.Fatalf("expected unconfigured page")
	}
	if page.Notice != calendarUnconfiguredNotice {
		t.Fatalf("unexpected notice: %q", page.Notice)
	}
	if fetcher.callCount != 0 {
		t.Fatalf("fetcher should not be called, got %d calls", fetcher.callCount)
	}
}

func TestCalendarPageInactiveSettings(t *testing.T) {
	settingsRepo := &fakeCalendarSettingsRepo{
		settings: calendar.Settings{
			Name:       "Klubový kalendář",
			CalendarID: "klub@group.calendar.google.com",
			APIKey:     "key-123",
			IsActive:   false,
		},
		exists: true,
	}
	fetcher := &fakeEventsFetcher{}
	svc := NewCalendarService(settingsRepo, &fakeEventRepo{}, fetcher)

	page, err := svc.Page(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Configured {
		t.Fatalf("expected unconfigured page for inactive settings")
	}
	if page.Notice != calendarUnconfiguredNotice {
		t.Fatalf("unexpected notice: %q", page.Notice)
	}
	if page.Name != "Klubový kalendář" {
		t.Fatalf("unexpected name: %s", page.Name)
	}
}

func TestCalendarPageFetches(t *testing.T) {
	now := time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC)
	settingsRepo := &fakeCalendarSettingsRepo{
		settings: calendar.Settings{
			Name:           "Klubový kalendář",
			CalendarID:     "klub@group.calendar.google.com",
			APIKey:         "key-123",
			IsActive:       true,
			MaxEvents:      25,
			ShowPastEvents: true,
			PastEventsDays: 7,
		},
		exists: true,
	}
	fetcher := &fakeEventsFetcher{events: []calendar.Event{
		{ID: "e1", Title: "Trénink"},
		{ID: "e2", Title: "Mistrovský zápas"},
	}}
	eventRepo := &fakeEventRepo{events: []event.Event{
		{ID: 1, Title: "Valná hromada", Date: now.Add(48 * time.Hour)},
		{ID: 2, Title: "Loňská akce", Date: now.Add(-48 * time.Hour)},
	}}
	svc := NewCalendarService(settingsRepo, eventRepo, fetcher)

	page, err := svc.Page(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !page.Configured {
		t.Fatalf("expected configured page")
	}
	if len(page.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(page.Events))
	}
	if len(page.ClubEvents) != 1 || page.ClubEvents[0].ID != 1 {
		t.Fatalf("unexpected club events: %v", page.ClubEvents)
	}
	if fetcher.lastID != "klub@group.calendar.google.com" || fetcher.lastKey != "key-123" {
		t.Fatalf("unexpected fetch credentials: %s, %s", fetcher.lastID, fetcher.lastKey)
	}
	if fetcher.lastMax != 25 {
		t.Fatalf("unexpected max results: %d", fetcher.lastMax)
	}
	if !fetcher.lastMin.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected time min: %s", fetcher.lastMin)
	}
}

func TestCalendarPageFetchErrorBecomesNotice(t *testing.T) {
	settingsRepo := &fakeCalendarSettingsRepo{
		settings: calendar.Settings{
			CalendarID: "klub@group.calendar.google.com",
			APIKey:     "key-123",
			IsActive:   true,
		},
		exists: true,
	}
	fetcher := &fakeEventsFetcher{err: errors.New("Nemáte oprávnění k tomuto kalendáři.")}
	svc := NewCalendarService(settingsRepo, &fakeEventRepo{}, fetcher)

	page, err := svc.Page(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !page.Configured {
		t.Fatalf("expected configured page")
	}
	if page.Notice != "Nemáte oprávnění k tomuto kalendáři." {
		t.Fatalf("unexpected notice: %s", page.Notice)
	}
	if len(page.Events) != 0 {
		t.Fatalf("expected no events, got %d", len(page.Events))
	}
}

func TestCalendarPageDefaultMaxEvents(t *testing.T) {
	settingsRepo := &fakeCalendarSettingsRepo{
		settings: calendar.Settings{
			CalendarID: "klub@group.calendar.google.com",
			APIKey:     "key-123",
			IsActive:   true,
		},
		exists: true,
	}
	fetcher := &fakeEventsFetcher{}
	svc := NewCalendarService(settingsRepo, &fakeEventRepo{}, fetcher)

	if _, err := svc.Page(context.Background(), time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.lastMax != calendarDefaultMaxEvents {
		t.Fatalf("unexpected max results: %d", fetcher.lastMax)
	}
}
