package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Gte("event_date", now)).
		OrderBy("event_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select upcoming events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}

	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event by id query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event by id: %w", err)
	}

	return eventFromRow(row), true, nil
}

func eventFromRow(row eventTableModel) event.Event {
	return event.Event{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Date:        row.EventDate,
		Location:    row.Location,
		MatchID:     nullInt64ToPtr(row.MatchID),
	}
}
