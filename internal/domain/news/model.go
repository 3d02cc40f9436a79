package news

import "time"

// Article is one news entry. Content carries sanitized HTML produced by the
// editor; this service stores it verbatim.
type Article struct {
	ID         int64
	Title      string
	Content    string
	ImagePath  string
	Author     string
	IsFeatured bool
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
