package management

import "context"

// Repository describes management member persistence needs from use cases.
type Repository interface {
	// List returns members ordered by (display order, role).
	List(ctx context.Context) ([]Member, error)
}
