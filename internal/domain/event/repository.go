package event

import (
	"context"
	"time"
)

// Repository describes event persistence needs from use cases.
type Repository interface {
	// ListUpcoming returns events with date >= now, ascending.
	ListUpcoming(ctx context.Context, now time.Time) ([]Event, error)
	GetByID(ctx context.Context, id int64) (Event, bool, error)
}
