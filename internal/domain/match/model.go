package match

import "time"

// Side identifies one participant of a match, denormalized for display.
type Side struct {
	TeamID     int64
	Name       string
	IsClubTeam bool
}

// Match is one fixture. Scores stay nil until the match has been played.
type Match struct {
	ID        int64
	LeagueID  int64
	Home      Side
	Away      Side
	Date      time.Time
	HomeScore *int
	AwayScore *int
	Location  string
	Referee   string
	Notes     string
}

// IsFinished reports whether both scores have been recorded.
func (m Match) IsFinished() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// IsClubMatch reports whether either side is the site's own club.
func (m Match) IsClubMatch() bool {
	return m.Home.IsClubTeam || m.Away.IsClubTeam
}
