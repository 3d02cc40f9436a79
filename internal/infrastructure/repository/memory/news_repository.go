package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
)

type NewsRepository struct {
	mu    sync.RWMutex
	items []news.Article
}

func NewNewsRepository(articles []news.Article) *NewsRepository {
	return &NewsRepository{items: append([]news.Article(nil), articles...)}
}

func (r *NewsRepository) ListPublished(_ context.Context, limit, offset int) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	published := r.published()
	if offset >= len(published) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(published) {
		end = len(published)
	}

	return published[offset:end], nil
}

func (r *NewsRepository) CountPublished(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.published()), nil
}

func (r *NewsRepository) GetPublishedByID(_ context.Context, id int64) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id && a.Published {
			return a, true, nil
		}
	}

	return news.Article{}, false, nil
}

func (r *NewsRepository) published() []news.Article {
	out := make([]news.Article, 0, len(r.items))
	for _, a := range r.items {
		if a.Published {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out
}
