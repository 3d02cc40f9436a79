package postgres

import "database/sql"

type teamTableModel struct {
	ID          int64         `db:"id"`
	LeagueID    sql.NullInt64 `db:"league_id"`
	Name        string        `db:"name"`
	City        string        `db:"city"`
	FoundedYear sql.NullInt32 `db:"founded_year"`
	Flag        string        `db:"flag"`
	IsClubTeam  bool          `db:"is_club_team"`
}
