package standing

// Standing is one league table row for one team. (team, league) is unique.
type Standing struct {
	LeagueID     int64
	TeamID       int64
	TeamName     string
	IsClubTeam   bool
	Position     int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// GoalDifference is always derived, never stored.
func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}
