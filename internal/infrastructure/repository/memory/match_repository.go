package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{items: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) ListUpcomingClub(_ context.Context, now time.Time, leagueID int64, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if !m.IsClubMatch() || m.Date.Before(now) {
			continue
		}
		if leagueID > 0 && m.LeagueID != leagueID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return clampMatches(out, limit), nil
}

func (r *MatchRepository) ListRecentClub(_ context.Context, now time.Time, leagueID int64, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if !m.IsClubMatch() || !m.Date.Before(now) || m.HomeScore == nil {
			continue
		}
		if leagueID > 0 && m.LeagueID != leagueID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return clampMatches(out, limit), nil
}

func (r *MatchRepository) NextClubMatch(ctx context.Context, now time.Time) (match.Match, bool, error) {
	upcoming, err := r.ListUpcomingClub(ctx, now, 0, 1)
	if err != nil || len(upcoming) == 0 {
		return match.Match{}, false, err
	}

	return upcoming[0], true, nil
}

func clampMatches(items []match.Match, limit int) []match.Match {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
