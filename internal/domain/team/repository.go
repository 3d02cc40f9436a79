package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID int64) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	// ClubTeam returns the team flagged as the site's own club. When more
	// than one row claims the flag the lowest id wins.
	ClubTeam(ctx context.Context) (Team, bool, error)
}
