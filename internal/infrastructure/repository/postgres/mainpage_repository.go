package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type mainPageConfigTableModel struct {
	SingletonKey    bool          `db:"singleton_key"`
	FeaturedNewsIDs pq.Int64Array `db:"featured_news_ids"`
}

type MainPageRepository struct {
	db *sqlx.DB
}

func NewMainPageRepository(db *sqlx.DB) *MainPageRepository {
	return &MainPageRepository{db: db}
}

func (r *MainPageRepository) Get(ctx context.Context) (mainpage.Config, bool, error) {
	query, args, err := qb.Select("*").From("main_page_config").
		Where(qb.Eq("singleton_key", true)).
		ToSQL()
	if err != nil {
		return mainpage.Config{}, false, fmt.Errorf("build get main page config query: %w", err)
	}

	var row mainPageConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return mainpage.Config{}, false, nil
		}
		return mainpage.Config{}, false, fmt.Errorf("get main page config: %w", err)
	}

	return mainpage.Config{FeaturedNewsIDs: []int64(row.FeaturedNewsIDs)}, true, nil
}

func (r *MainPageRepository) Save(ctx context.Context, cfg mainpage.Config) error {
	query, args, err := qb.InsertInto("main_page_config").
		Columns("singleton_key", "featured_news_ids").
		Values(true, pq.Int64Array(cfg.FeaturedNewsIDs)).
		Suffix("ON CONFLICT (singleton_key) DO UPDATE SET featured_news_ids = EXCLUDED.featured_news_ids").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save main page config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save main page config: %w", err)
	}

	return nil
}
