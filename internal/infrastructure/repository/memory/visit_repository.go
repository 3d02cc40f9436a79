package memory

import (
	"context"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
)

type VisitRepository struct {
	mu     sync.RWMutex
	items  []visit.PageVisit
	nextID int64
}

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{}
}

func (r *VisitRepository) Insert(_ context.Context, v visit.PageVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.items = append(r.items, v)
	return nil
}

// Visits returns a snapshot of recorded visits, oldest first.
func (r *VisitRepository) Visits() []visit.PageVisit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]visit.PageVisit(nil), r.items...)
}
