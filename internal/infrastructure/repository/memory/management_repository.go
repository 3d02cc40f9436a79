package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
)

type ManagementRepository struct {
	mu    sync.RWMutex
	items []management.Member
}

func NewManagementRepository(members []management.Member) *ManagementRepository {
	return &ManagementRepository{items: append([]management.Member(nil), members...)}
}

func (r *ManagementRepository) List(_ context.Context) ([]management.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]management.Member(nil), r.items...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Role < out[j].Role
	})

	return out, nil
}
