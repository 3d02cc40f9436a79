package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// ListByTeam returns players ordered by jersey number.
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
}
