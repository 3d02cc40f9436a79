package clubinfo

import "context"

// Repository describes club info persistence. The table holds at most one
// row, keyed by a fixed singleton key.
type Repository interface {
	Get(ctx context.Context) (ClubInfo, bool, error)
	Save(ctx context.Context, info ClubInfo) error
}
