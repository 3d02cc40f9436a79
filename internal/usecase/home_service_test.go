package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
)

func TestHomeFeaturedNewsSkipsDanglingIDs(t *testing.T) {
	newsRepo := &fakeNewsRepo{articles: []news.Article{
		{ID: 1, Title: "Výhra v derby"},
		{ID: 2, Title: "Nový trenér"},
	}}
	mainpageRepo := &fakeMainpageRepo{
		cfg:    mainpage.Config{FeaturedNewsIDs: []int64{2, 99, 1}},
		exists: true,
	}

	svc := NewHomeService(newsRepo, mainpageRepo, &fakeMatchRepo{}, &fakeStandingRepo{}, &fakeTeamRepo{}, &fakeClubInfoRepo{})

	home, err := svc.Get(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(home.FeaturedNews) != 2 {
		t.Fatalf("expected 2 featured articles, got %d", len(home.FeaturedNews))
	}
	if home.FeaturedNews[0].ID != 2 || home.FeaturedNews[1].ID != 1 {
		t.Fatalf("unexpected featured order: %d, %d", home.FeaturedNews[0].ID, home.FeaturedNews[1].ID)
	}
}

func TestHomeWithoutMainPageConfig(t *testing.T) {
	newsRepo := &fakeNewsRepo{articles: []news.Article{{ID: 1, Title: "Zpráva"}}}
	svc := NewHomeService(newsRepo, &fakeMainpageRepo{}, &fakeMatchRepo{}, &fakeStandingRepo{}, &fakeTeamRepo{}, &fakeClubInfoRepo{})

	home, err := svc.Get(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.FeaturedNews) != 0 {
		t.Fatalf("expected no featured news, got %d", len(home.FeaturedNews))
	}
	if len(home.LatestNews) != 1 {
		t.Fatalf("expected 1 latest article, got %d", len(home.LatestNews))
	}
}

func TestHomeTableWindowAroundClub(t *testing.T) {
	teamRepo := &fakeTeamRepo{teams: []team.Team{
		{ID: 10, Name: "TJ Hlavnice", IsClubTeam: true},
	}}
	standingRepo := &fakeStandingRepo{rows: []standing.Standing{
		{LeagueID: 1, TeamID: 20, Position: 1},
		{LeagueID: 1, TeamID: 21, Position: 2},
		{LeagueID: 1, TeamID: 10, Position: 3, IsClubTeam: true},
		{LeagueID: 1, TeamID: 22, Position: 4},
		{LeagueID: 1, TeamID: 23, Position: 5},
		{LeagueID: 1, TeamID: 24, Position: 6},
	}}

	svc := NewHomeService(&fakeNewsRepo{}, &fakeMainpageRepo{}, &fakeMatchRepo{}, standingRepo, teamRepo, &fakeClubInfoRepo{})

	home, err := svc.Get(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(home.TableWindow) != 5 {
		t.Fatalf("expected 5 window rows, got %d", len(home.TableWindow))
	}
	if home.TableWindow[0].Position != 1 || home.TableWindow[4].Position != 5 {
		t.Fatalf("unexpected window bounds: %d..%d", home.TableWindow[0].Position, home.TableWindow[4].Position)
	}
}

func TestHomeTableWindowClampsAtTop(t *testing.T) {
	teamRepo := &fakeTeamRepo{teams: []team.Team{{ID: 10, IsClubTeam: true}}}
	standingRepo := &fakeStandingRepo{rows: []standing.Standing{
		{LeagueID: 1, TeamID: 10, Position: 1, IsClubTeam: true},
		{LeagueID: 1, TeamID: 21, Position: 2},
		{LeagueID: 1, TeamID: 22, Position: 3},
		{LeagueID: 1, TeamID: 23, Position: 4},
	}}

	svc := NewHomeService(&fakeNewsRepo{}, &fakeMainpageRepo{}, &fakeMatchRepo{}, standingRepo, teamRepo, &fakeClubInfoRepo{})

	home, err := svc.Get(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.TableWindow) != 3 {
		t.Fatalf("expected 3 window rows, got %d", len(home.TableWindow))
	}
	if home.TableWindow[0].Position != 1 {
		t.Fatalf("window should start at position 1, got %d", home.TableWindow[0].Position)
	}
}

func TestHomeNextMatch(t *testing.T) {
	next := match.Match{ID: 7, Home: match.Side{Name: "TJ Hlavnice", IsClubTeam: true}, Away: match.Side{Name: "Sokol Březová"}}
	matchRepo := &fakeMatchRepo{next: &next}

	svc := NewHomeService(&fakeNewsRepo{}, &fakeMainpageRepo{}, matchRepo, &fakeStandingRepo{}, &fakeTeamRepo{}, &fakeClubInfoRepo{})

	home, err := svc.Get(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home.NextMatch == nil || home.NextMatch.ID != 7 {
		t.Fatalf("unexpected next match: %v", home.NextMatch)
	}
}
