package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func matchSelect() *qb.SelectBuilder {
	return qb.Select(
		"m.id", "m.league_id", "m.home_team_id", "m.away_team_id",
		"m.match_date", "m.home_score", "m.away_score",
		"m.location", "m.referee", "m.notes",
		"h.name AS home_name", "h.is_club_team AS home_is_club",
		"a.name AS away_name", "a.is_club_team AS away_is_club",
	).
		From("matches m").
		Join("JOIN teams h ON h.id = m.home_team_id").
		Join("JOIN teams a ON a.id = m.away_team_id")
}

func clubSideCondition() qb.Condition {
	return qb.Or(
		qb.Eq("h.is_club_team", true),
		qb.Eq("a.is_club_team", true),
	)
}

func (r *MatchRepository) ListUpcomingClub(ctx context.Context, now time.Time, leagueID int64, limit int) ([]match.Match, error) {
	builder := matchSelect().
		Where(
			clubSideCondition(),
			qb.Gte("m.match_date", now),
		).
		OrderBy("m.match_date", "m.id").
		Limit(limit)
	if leagueID > 0 {
		builder = builder.Where(qb.Eq("m.league_id", leagueID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming club matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListRecentClub(ctx context.Context, now time.Time, leagueID int64, limit int) ([]match.Match, error) {
	builder := matchSelect().
		Where(
			clubSideCondition(),
			qb.Lt("m.match_date", now),
			qb.NotNull("m.home_score"),
		).
		OrderBy("m.match_date DESC", "m.id DESC").
		Limit(limit)
	if leagueID > 0 {
		builder = builder.Where(qb.Eq("m.league_id", leagueID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent club matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) NextClubMatch(ctx context.Context, now time.Time) (match.Match, bool, error) {
	query, args, err := matchSelect().
		Where(
			clubSideCondition(),
			qb.Gte("m.match_date", now),
		).
		OrderBy("m.match_date", "m.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build next club match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get next club match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:       row.ID,
		LeagueID: row.LeagueID,
		Home: match.Side{
			TeamID:     row.HomeTeamID,
			Name:       row.HomeName,
			IsClubTeam: row.HomeIsClub,
		},
		Away: match.Side{
			TeamID:     row.AwayTeamID,
			Name:       row.AwayName,
			IsClubTeam: row.AwayIsClub,
		},
		Date:      row.MatchDate,
		HomeScore: nullInt32ToIntPtr(row.HomeScore),
		AwayScore: nullInt32ToIntPtr(row.AwayScore),
		Location:  row.Location,
		Referee:   row.Referee,
		Notes:     row.Notes,
	}
}
