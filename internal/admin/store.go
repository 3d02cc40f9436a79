package admin

import "context"

// ListPageSize bounds every administration listing.
const ListPageSize = 25

// ListQuery narrows one listing request.
type ListQuery struct {
	// Search matches case-insensitively against the resource's search
	// columns.
	Search string
	// Filters holds exact-match values keyed by filter column.
	Filters map[string]any
	// Page counts from one.
	Page int
}

// Store persists administration records generically, keyed by resource
// configuration.
type Store interface {
	List(ctx context.Context, res Resource, q ListQuery) ([]Row, int, error)
	Get(ctx context.Context, res Resource, id int64) (Row, bool, error)
	Create(ctx context.Context, res Resource, values Row) (int64, error)
	Update(ctx context.Context, res Resource, id int64, values Row) (bool, error)
	Delete(ctx context.Context, res Resource, id int64) (bool, error)

	// ClearBool unsets a flag column on every row except the given one.
	// Pass zero to clear it everywhere, e.g. ahead of an insert.
	ClearBool(ctx context.Context, res Resource, column string, exceptID int64) error

	GetSingleton(ctx context.Context, res Resource) (Row, bool, error)
	UpsertSingleton(ctx context.Context, res Resource, values Row) error
}
