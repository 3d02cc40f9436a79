package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) ListPublished(ctx context.Context, limit, offset int) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(qb.Eq("published", true)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select published news query: %w", err)
	}

	var rows []newsArticleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select published news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromRow(row))
	}

	return out, nil
}

func (r *NewsRepository) CountPublished(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("news_articles").
		Where(qb.Eq("published", true)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count published news query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count published news: %w", err)
	}

	return count, nil
}

func (r *NewsRepository) GetPublishedByID(ctx context.Context, id int64) (news.Article, bool, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(
			qb.Eq("id", id),
			qb.Eq("published", true),
		).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build get published article query: %w", err)
	}

	var row newsArticleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("get published article: %w", err)
	}

	return articleFromRow(row), true, nil
}

func articleFromRow(row newsArticleTableModel) news.Article {
	return news.Article{
		ID:         row.ID,
		Title:      row.Title,
		Content:    row.Content,
		ImagePath:  row.Image,
		Author:     row.Author,
		IsFeatured: row.IsFeatured,
		Published:  row.Published,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
