package postgres

type standingTableModel struct {
	LeagueID     int64  `db:"league_id"`
	TeamID       int64  `db:"team_id"`
	TeamName     string `db:"team_name"`
	IsClubTeam   bool   `db:"is_club_team"`
	Position     int    `db:"position"`
	Played       int    `db:"played"`
	Won          int    `db:"won"`
	Drawn        int    `db:"drawn"`
	Lost         int    `db:"lost"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
	Points       int    `db:"points"`
}
