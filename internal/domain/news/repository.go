package news

import "context"

// Repository describes news persistence needs from use cases. Only published
// articles are visible through these reads; drafts stay admin-only.
type Repository interface {
	// ListPublished returns published articles, newest first.
	ListPublished(ctx context.Context, limit, offset int) ([]Article, error)
	CountPublished(ctx context.Context) (int, error)
	GetPublishedByID(ctx context.Context, id int64) (Article, bool, error)
}
