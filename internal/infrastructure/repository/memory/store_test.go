package memory

import (
	"context"
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
)

func TestSeededStoreClubTeam(t *testing.T) {
	store := NewSeededStore(time.Now())

	club, exists, err := store.Teams.ClubTeam(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatalf("expected seeded club team")
	}
	if club.Name != "TJ Hlavnice" {
		t.Fatalf("unexpected club team: %s", club.Name)
	}
}

func TestClubTeamLowestIDWins(t *testing.T) {
	repo := NewTeamRepository([]team.Team{
		{ID: 5, Name: "Duplicitní", IsClubTeam: true},
		{ID: 2, Name: "TJ Hlavnice", IsClubTeam: true},
	})

	club, exists, err := repo.ClubTeam(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || club.ID != 2 {
		t.Fatalf("expected lowest id club team, got %+v", club)
	}
}

func TestSeededStoreHidesDrafts(t *testing.T) {
	store := NewSeededStore(time.Now())

	count, err := store.News.CountPublished(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 published articles, got %d", count)
	}

	_, exists, err := store.News.GetPublishedByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("draft article should not be visible")
	}
}

func TestSeededStoreMatchReads(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	store := NewSeededStore(now)

	upcoming, err := store.Matches.ListUpcomingClub(context.Background(), now, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(upcoming))
	}
	if !upcoming[0].Date.Before(upcoming[1].Date) {
		t.Fatalf("upcoming matches should be ascending by date")
	}

	recent, err := store.Matches.ListRecentClub(context.Background(), now, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 1 || !recent[0].IsFinished() {
		t.Fatalf("unexpected recent matches: %v", recent)
	}

	next, exists, err := store.Matches.NextClubMatch(context.Background(), now)
	if err != nil || !exists {
		t.Fatalf("expected next club match, err=%v", err)
	}
	if next.ID != 2 {
		t.Fatalf("unexpected next match: %d", next.ID)
	}
}
