package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func standingSelect() *qb.SelectBuilder {
	return qb.Select(
		"s.league_id", "s.team_id", "s.position",
		"s.played", "s.won", "s.drawn", "s.lost",
		"s.goals_for", "s.goals_against", "s.points",
		"t.name AS team_name", "t.is_club_team",
	).
		From("standings s").
		Join("JOIN teams t ON t.id = s.team_id")
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID int64) ([]standing.Standing, error) {
	query, args, err := standingSelect().
		Where(qb.Eq("s.league_id", leagueID)).
		OrderBy("s.position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) GetByTeam(ctx context.Context, teamID int64) (standing.Standing, bool, error) {
	query, args, err := standingSelect().
		Where(qb.Eq("s.team_id", teamID)).
		OrderBy("s.league_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return standing.Standing{}, false, fmt.Errorf("build get standing by team query: %w", err)
	}

	var row standingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standing.Standing{}, false, nil
		}
		return standing.Standing{}, false, fmt.Errorf("get standing by team: %w", err)
	}

	return standingFromRow(row), true, nil
}

func (r *StandingRepository) ListWindow(ctx context.Context, leagueID int64, minPos, maxPos int) ([]standing.Standing, error) {
	query, args, err := standingSelect().
		Where(
			qb.Eq("s.league_id", leagueID),
			qb.Gte("s.position", minPos),
			qb.Lte("s.position", maxPos),
		).
		OrderBy("s.position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standing window query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any) ([]standing.Standing, error) {
	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}

	return out, nil
}

func standingFromRow(row standingTableModel) standing.Standing {
	return standing.Standing{
		LeagueID:     row.LeagueID,
		TeamID:       row.TeamID,
		TeamName:     row.TeamName,
		IsClubTeam:   row.IsClubTeam,
		Position:     row.Position,
		Played:       row.Played,
		Won:          row.Won,
		Drawn:        row.Drawn,
		Lost:         row.Lost,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Points:       row.Points,
	}
}
