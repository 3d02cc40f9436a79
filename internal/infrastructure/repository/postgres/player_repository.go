package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("jersey_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:           row.ID,
			TeamID:       row.TeamID,
			JerseyNumber: row.JerseyNumber,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Position:     player.Position(row.Position),
			BirthDate:    row.BirthDate,
			PhotoPath:    row.Photo,
			Goals:        row.Goals,
			YellowCards:  row.YellowCards,
			RedCards:     row.RedCards,
		})
	}

	return out, nil
}
