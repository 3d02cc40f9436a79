package postgres

import "time"

type newsArticleTableModel struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	Image      string    `db:"image"`
	Author     string    `db:"author"`
	IsFeatured bool      `db:"is_featured"`
	Published  bool      `db:"published"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
