package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{items: append([]player.Player(nil), players...)}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JerseyNumber < out[j].JerseyNumber })

	return out, nil
}
