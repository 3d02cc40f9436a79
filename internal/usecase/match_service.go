package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
)

const (
	matchUpcomingLimit = 5
	matchRecentLimit   = 10
)

// MatchOverview is the matches page payload: the club's upcoming fixtures
// and recent results, optionally narrowed to one league, plus the leagues
// available for the filter.
type MatchOverview struct {
	Upcoming []match.Match
	Recent   []match.Match
	Leagues  []league.League
	LeagueID int64
}

type MatchService struct {
	matchRepo  match.Repository
	leagueRepo league.Repository
}

func NewMatchService(matchRepo match.Repository, leagueRepo league.Repository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		leagueRepo: leagueRepo,
	}
}

// Overview lists club matches around now. A zero leagueID means all leagues.
func (s *MatchService) Overview(ctx context.Context, now time.Time, leagueID int64) (MatchOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Overview")
	defer span.End()

	// Unknown or negative league filters fall back to the unfiltered
	// overview instead of erroring.
	if leagueID < 0 {
		leagueID = 0
	}
	if leagueID > 0 {
		_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return MatchOverview{}, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			leagueID = 0
		}
	}

	upcoming, err := s.matchRepo.ListUpcomingClub(ctx, now, leagueID, matchUpcomingLimit)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("list upcoming club matches: %w", err)
	}

	recent, err := s.matchRepo.ListRecentClub(ctx, now, leagueID, matchRecentLimit)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("list recent club matches: %w", err)
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("list leagues: %w", err)
	}

	return MatchOverview{
		Upcoming: upcoming,
		Recent:   recent,
		Leagues:  leagues,
		LeagueID: leagueID,
	}, nil
}
