package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases. "Club" reads
// only return matches where either side carries the club flag. A zero
// leagueID means no league filter.
type Repository interface {
	// ListUpcomingClub returns club matches with date >= now, ascending.
	ListUpcomingClub(ctx context.Context, now time.Time, leagueID int64, limit int) ([]Match, error)
	// ListRecentClub returns club matches with date < now and a recorded
	// home score, descending.
	ListRecentClub(ctx context.Context, now time.Time, leagueID int64, limit int) ([]Match, error)
	// NextClubMatch returns the nearest upcoming club match, if any.
	NextClubMatch(ctx context.Context, now time.Time) (Match, bool, error)
}
