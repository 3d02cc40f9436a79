package mainpage

import "context"

// Repository describes main page configuration persistence. The table holds
// at most one row, keyed by a fixed singleton key.
type Repository interface {
	Get(ctx context.Context) (Config, bool, error)
	Save(ctx context.Context, cfg Config) error
}
