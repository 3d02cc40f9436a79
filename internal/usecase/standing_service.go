package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
)

// TableRow is one standings row enriched with derived display values.
type TableRow struct {
	standing.Standing
	GoalDiff int
	// SuccessRate is the share of available points taken, in percent,
	// rounded to one decimal place.
	SuccessRate float64
	// AvgGoalsFor and AvgGoalsAgainst are per played match, rounded to
	// one decimal place.
	AvgGoalsFor     float64
	AvgGoalsAgainst float64
}

// Table is one league's full standings page.
type Table struct {
	League league.League
	Rows   []TableRow
}

type StandingService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
}

func NewStandingService(leagueRepo league.Repository, standingRepo standing.Repository) *StandingService {
	return &StandingService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
	}
}

// Tables builds standings for every league, skipping leagues without rows.
func (s *StandingService) Tables(ctx context.Context) ([]Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Tables")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]Table, 0, len(leagues))
	for _, l := range leagues {
		rows, err := s.standingRepo.ListByLeague(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("list standings for league %d: %w", l.ID, err)
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, Table{League: l, Rows: buildTableRows(rows)})
	}

	return out, nil
}

// TableByLeague builds one league's standings.
func (s *StandingService) TableByLeague(ctx context.Context, leagueID int64) (Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TableByLeague")
	defer span.End()

	if leagueID <= 0 {
		return Table{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return Table{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return Table{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	rows, err := s.standingRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return Table{}, fmt.Errorf("list standings: %w", err)
	}

	return Table{League: l, Rows: buildTableRows(rows)}, nil
}

func buildTableRows(rows []standing.Standing) []TableRow {
	out := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, TableRow{
			Standing:        row,
			GoalDiff:        row.GoalDifference(),
			SuccessRate:     successRate(row.Points, row.Played),
			AvgGoalsFor:     perMatch(row.GoalsFor, row.Played),
			AvgGoalsAgainst: perMatch(row.GoalsAgainst, row.Played),
		})
	}
	return out
}

// successRate is points taken over points available, in percent. A team
// with no matches played scores zero rather than dividing by zero.
func successRate(points, played int) float64 {
	if played <= 0 {
		return 0
	}
	rate := float64(points) / float64(played*3) * 100
	return math.Round(rate*10) / 10
}

func perMatch(goals, played int) float64 {
	if played <= 0 {
		return 0
	}
	return math.Round(float64(goals)/float64(played)*10) / 10
}
