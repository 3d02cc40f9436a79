package visit

import "context"

// Repository describes page visit persistence. Rows are append-only; the
// admin surface exposes them read-only.
type Repository interface {
	Insert(ctx context.Context, v PageVisit) error
}
