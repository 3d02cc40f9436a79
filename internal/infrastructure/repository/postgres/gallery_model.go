package postgres

import (
	"database/sql"
	"time"
)

type galleryAlbumTableModel struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	PhotoCount  int       `db:"photo_count"`
	CoverPath   string    `db:"cover_path"`
}

type galleryPhotoTableModel struct {
	ID          int64         `db:"id"`
	AlbumID     int64         `db:"album_id"`
	EventID     sql.NullInt64 `db:"event_id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Image       string        `db:"image"`
	UploadedAt  time.Time     `db:"uploaded_at"`
}
