package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         int64         `db:"id"`
	LeagueID   int64         `db:"league_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	MatchDate  time.Time     `db:"match_date"`
	HomeScore  sql.NullInt32 `db:"home_score"`
	AwayScore  sql.NullInt32 `db:"away_score"`
	Location   string        `db:"location"`
	Referee    string        `db:"referee"`
	Notes      string        `db:"notes"`
	HomeName   string        `db:"home_name"`
	HomeIsClub bool          `db:"home_is_club"`
	AwayName   string        `db:"away_name"`
	AwayIsClub bool          `db:"away_is_club"`
}
