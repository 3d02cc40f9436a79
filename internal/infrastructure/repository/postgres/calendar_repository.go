package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type calendarSettingsTableModel struct {
	SingletonKey   bool   `db:"singleton_key"`
	Name           string `db:"name"`
	CalendarID     string `db:"calendar_id"`
	APIKey         string `db:"api_key"`
	IsActive       bool   `db:"is_active"`
	MaxEvents      int    `db:"max_events"`
	ShowPastEvents bool   `db:"show_past_events"`
	PastEventsDays int    `db:"past_events_days"`
}

type CalendarSettingsRepository struct {
	db *sqlx.DB
}

func NewCalendarSettingsRepository(db *sqlx.DB) *CalendarSettingsRepository {
	return &CalendarSettingsRepository{db: db}
}

func (r *CalendarSettingsRepository) Get(ctx context.Context) (calendar.Settings, bool, error) {
	query, args, err := qb.Select("*").From("calendar_settings").
		Where(qb.Eq("singleton_key", true)).
		ToSQL()
	if err != nil {
		return calendar.Settings{}, false, fmt.Errorf("build get calendar settings query: %w", err)
	}

	var row calendarSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return calendar.Settings{}, false, nil
		}
		return calendar.Settings{}, false, fmt.Errorf("get calendar settings: %w", err)
	}

	return calendar.Settings{
		Name:           row.Name,
		CalendarID:     row.CalendarID,
		APIKey:         row.APIKey,
		IsActive:       row.IsActive,
		MaxEvents:      row.MaxEvents,
		ShowPastEvents: row.ShowPastEvents,
		PastEventsDays: row.PastEventsDays,
	}, true, nil
}

func (r *CalendarSettingsRepository) Save(ctx context.Context, s calendar.Settings) error {
	query, args, err := qb.InsertInto("calendar_settings").
		Columns("singleton_key", "name", "calendar_id", "api_key", "is_active", "max_events", "show_past_events", "past_events_days").
		Values(true, s.Name, s.CalendarID, s.APIKey, s.IsActive, s.MaxEvents, s.ShowPastEvents, s.PastEventsDays).
		Suffix(`ON CONFLICT (singleton_key) DO UPDATE SET
			name = EXCLUDED.name,
			calendar_id = EXCLUDED.calendar_id,
			api_key = EXCLUDED.api_key,
			is_active = EXCLUDED.is_active,
			max_events = EXCLUDED.max_events,
			show_past_events = EXCLUDED.show_past_events,
			past_events_days = EXCLUDED.past_events_days`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save calendar settings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save calendar settings: %w", err)
	}

	return nil
}
