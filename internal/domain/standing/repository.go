package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	// ListByLeague returns the league table ordered by position.
	ListByLeague(ctx context.Context, leagueID int64) ([]Standing, error)
	// GetByTeam returns the team's row; a team appears in at most one table
	// per league.
	GetByTeam(ctx context.Context, teamID int64) (Standing, bool, error)
	// ListWindow returns rows of one league with minPos <= position <= maxPos,
	// ordered by position.
	ListWindow(ctx context.Context, leagueID int64, minPos, maxPos int) ([]Standing, error)
}
