package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
)

const (
	calendarDefaultMaxEvents   = 10
	calendarUnconfiguredNotice = "Kalendář Google zatím není nastaven."
)

// CalendarEventsFetcher fetches events from the external calendar API.
// Errors carry user-facing messages suitable for the calendar page.
type CalendarEventsFetcher interface {
	FetchEvents(ctx context.Context, calendarID, apiKey string, timeMin time.Time, maxResults int) ([]calendar.Event, error)
}

// CalendarPage is the public calendar payload. A missing or inactive
// configuration renders the page with Configured=false and an explanatory
// notice; a fetch failure renders it with the failure notice instead of an
// error status.
type CalendarPage struct {
	Name       string
	Configured bool
	Events     []calendar.Event
	ClubEvents []event.Event
	Notice     string
}

type CalendarService struct {
	settingsRepo calendar.SettingsRepository
	eventRepo    event.Repository
	fetcher      CalendarEventsFetcher
}

func NewCalendarService(settingsRepo calendar.SettingsRepository, eventRepo event.Repository, fetcher CalendarEventsFetcher) *CalendarService {
	return &CalendarService{
		settingsRepo: settingsRepo,
		eventRepo:    eventRepo,
		fetcher:      fetcher,
	}
}

// Upcoming lists local club events from now on, soonest first.
func (s *CalendarService) Upcoming(ctx context.Context, now time.Time) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarService.Upcoming")
	defer span.End()

	events, err := s.eventRepo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming club events: %w", err)
	}

	return events, nil
}

func (s *CalendarService) Page(ctx context.Context, now time.Time) (CalendarPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarService.Page")
	defer span.End()

	clubEvents, err := s.eventRepo.ListUpcoming(ctx, now)
	if err != nil {
		return CalendarPage{}, fmt.Errorf("list upcoming club events: %w", err)
	}

	settings, exists, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return CalendarPage{}, fmt.Errorf("get calendar settings: %w", err)
	}
	if !exists || !settings.Configured() {
		return CalendarPage{
			Name:       settings.Name,
			ClubEvents: clubEvents,
			Notice:     calendarUnconfiguredNotice,
		}, nil
	}

	maxEvents := settings.MaxEvents
	if maxEvents <= 0 {
		maxEvents = calendarDefaultMaxEvents
	}

	events, err := s.fetcher.FetchEvents(ctx, settings.CalendarID, settings.APIKey, settings.TimeMin(now), maxEvents)
	if err != nil {
		return CalendarPage{
			Name:       settings.Name,
			Configured: true,
			ClubEvents: clubEvents,
			Notice:     err.Error(),
		}, nil
	}

	return CalendarPage{
		Name:       settings.Name,
		Configured: true,
		Events:     events,
		ClubEvents: clubEvents,
	}, nil
}
