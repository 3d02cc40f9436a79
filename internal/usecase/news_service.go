package usecase

import (
	"context"
	"fmt"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
)

const newsPageSize = 10

// NewsPage is one page of published articles plus paging metadata.
type NewsPage struct {
	Articles   []news.Article
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

type NewsService struct {
	newsRepo news.Repository
}

func NewNewsService(newsRepo news.Repository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

func (s *NewsService) List(ctx context.Context, page int) (NewsPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	if page < 1 {
		page = 1
	}

	total, err := s.newsRepo.CountPublished(ctx)
	if err != nil {
		return NewsPage{}, fmt.Errorf("count published news: %w", err)
	}

	totalPages := pageCount(total, newsPageSize)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	articles, err := s.newsRepo.ListPublished(ctx, newsPageSize, (page-1)*newsPageSize)
	if err != nil {
		return NewsPage{}, fmt.Errorf("list published news: %w", err)
	}

	return NewsPage{
		Articles:   articles,
		Page:       page,
		PageSize:   newsPageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func (s *NewsService) Get(ctx context.Context, id int64) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Get")
	defer span.End()

	if id <= 0 {
		return news.Article{}, fmt.Errorf("%w: article id must be positive", ErrInvalidInput)
	}

	article, exists, err := s.newsRepo.GetPublishedByID(ctx, id)
	if err != nil {
		return news.Article{}, fmt.Errorf("get published article: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%d", ErrNotFound, id)
	}

	return article, nil
}

func pageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
