package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
)

type StandingRepository struct {
	mu    sync.RWMutex
	items []standing.Standing
}

func NewStandingRepository(standings []standing.Standing) *StandingRepository {
	return &StandingRepository{items: append([]standing.Standing(nil), standings...)}
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID int64) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0, len(r.items))
	for _, s := range r.items {
		if s.LeagueID == leagueID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out, nil
}

func (r *StandingRepository) GetByTeam(_ context.Context, teamID int64) (standing.Standing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.TeamID == teamID {
			return s, true, nil
		}
	}

	return standing.Standing{}, false, nil
}

func (r *StandingRepository) ListWindow(_ context.Context, leagueID int64, minPos, maxPos int) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0, len(r.items))
	for _, s := range r.items {
		if s.LeagueID == leagueID && s.Position >= minPos && s.Position <= maxPos {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out, nil
}
