package gallery

import (
	"fmt"
	"time"
)

// Album is a named grouping of gallery photos.
type Album struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	PhotoCount  int
	CoverPath   string
}

// Photo is one gallery image inside an album, optionally tied to an event.
type Photo struct {
	ID          int64
	AlbumID     int64
	EventID     *int64
	Title       string
	Description string
	ImagePath   string
	UploadedAt  time.Time
}

func (p Photo) Validate() error {
	if p.AlbumID <= 0 {
		return fmt.Errorf("photo album id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("photo title is required")
	}
	if p.ImagePath == "" {
		return fmt.Errorf("photo image path is required")
	}

	return nil
}
