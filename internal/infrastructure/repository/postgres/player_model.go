package postgres

import "time"

type playerTableModel struct {
	ID           int64      `db:"id"`
	TeamID       int64      `db:"team_id"`
	JerseyNumber int        `db:"jersey_number"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Position     string     `db:"position"`
	BirthDate    *time.Time `db:"birth_date"`
	Photo        string     `db:"photo"`
	Goals        int        `db:"goals"`
	YellowCards  int        `db:"yellow_cards"`
	RedCards     int        `db:"red_cards"`
}
