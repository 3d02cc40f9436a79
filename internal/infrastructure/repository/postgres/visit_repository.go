package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type pageVisitInsertModel struct {
	PageName  string    `db:"page_name"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	VisitedAt time.Time `db:"visited_at"`
}

type VisitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Insert(ctx context.Context, v visit.PageVisit) error {
	query, args, err := qb.InsertModel("page_visits", pageVisitInsertModel{
		PageName:  v.PageName,
		IPAddress: v.IPAddress,
		UserAgent: v.UserAgent,
		VisitedAt: v.Timestamp,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert page visit query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert page visit: %w", err)
	}

	return nil
}
