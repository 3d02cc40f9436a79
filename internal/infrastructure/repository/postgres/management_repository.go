package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type ManagementRepository struct {
	db *sqlx.DB
}

func NewManagementRepository(db *sqlx.DB) *ManagementRepository {
	return &ManagementRepository{db: db}
}

func (r *ManagementRepository) List(ctx context.Context) ([]management.Member, error) {
	query, args, err := qb.Select("*").From("management_members").
		OrderBy("display_order", "role", "last_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select management members query: %w", err)
	}

	var rows []managementMemberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select management members: %w", err)
	}

	out := make([]management.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, management.Member{
			ID:           row.ID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Role:         management.Role(row.Role),
			PhotoPath:    row.Photo,
			Bio:          row.Bio,
			Phone:        row.Phone,
			Email:        row.Email,
			DisplayOrder: row.DisplayOrder,
		})
	}

	return out, nil
}
