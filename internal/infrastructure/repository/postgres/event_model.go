package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	EventDate   time.Time     `db:"event_date"`
	Location    string        `db:"location"`
	MatchID     sql.NullInt64 `db:"match_id"`
}
