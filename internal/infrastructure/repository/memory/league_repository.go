package memory

import (
	"context"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{items: append([]league.League(nil), leagues...)}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.League(nil), r.items...), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.items {
		if l.ID == id {
			return l, true, nil
		}
	}

	return league.League{}, false, nil
}
