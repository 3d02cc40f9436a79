package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
)

func TestMatchOverviewFiltersByLeague(t *testing.T) {
	leagueRepo := &fakeLeagueRepo{leagues: []league.League{
		{ID: 1, Name: "Okresní přebor", Season: "2025/2026"},
		{ID: 2, Name: "Okresní pohár", Season: "2025/2026"},
	}}
	matchRepo := &fakeMatchRepo{
		upcoming: []match.Match{
			{ID: 1, LeagueID: 1},
			{ID: 2, LeagueID: 2},
		},
		recent: []match.Match{
			{ID: 3, LeagueID: 1},
		},
	}

	svc := NewMatchService(matchRepo, leagueRepo)

	overview, err := svc.Overview(context.Background(), time.Now(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(overview.Upcoming) != 1 || overview.Upcoming[0].ID != 1 {
		t.Fatalf("unexpected upcoming: %v", overview.Upcoming)
	}
	if len(overview.Recent) != 1 || overview.Recent[0].ID != 3 {
		t.Fatalf("unexpected recent: %v", overview.Recent)
	}
	if len(overview.Leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(overview.Leagues))
	}
	if overview.LeagueID != 1 {
		t.Fatalf("unexpected selected league: %d", overview.LeagueID)
	}
}

func TestMatchOverviewAllLeagues(t *testing.T) {
	matchRepo := &fakeMatchRepo{upcoming: []match.Match{
		{ID: 1, LeagueID: 1},
		{ID: 2, LeagueID: 2},
	}}
	svc := NewMatchService(matchRepo, &fakeLeagueRepo{})

	overview, err := svc.Overview(context.Background(), time.Now(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(overview.Upcoming))
	}
}

func TestMatchOverviewIgnoresUnknownLeague(t *testing.T) {
	matchRepo := &fakeMatchRepo{upcoming: []match.Match{
		{ID: 1, LeagueID: 1},
		{ID: 2, LeagueID: 2},
	}}
	svc := NewMatchService(matchRepo, &fakeLeagueRepo{})

	overview, err := svc.Overview(context.Background(), time.Now(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.LeagueID != 0 {
		t.Fatalf("expected unknown league filter to be dropped, got %d", overview.LeagueID)
	}
	if len(overview.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(overview.Upcoming))
	}
}

func TestMatchOverviewIgnoresNegativeLeague(t *testing.T) {
	svc := NewMatchService(&fakeMatchRepo{}, &fakeLeagueRepo{})

	overview, err := svc.Overview(context.Background(), time.Now(), -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.LeagueID != 0 {
		t.Fatalf("expected negative league filter to be dropped, got %d", overview.LeagueID)
	}
}
