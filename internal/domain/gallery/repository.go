package gallery

import "context"

// Repository describes gallery persistence needs from use cases and from the
// bulk intake path.
type Repository interface {
	// ListAlbums returns albums newest first, with photo counts.
	ListAlbums(ctx context.Context, limit, offset int) ([]Album, error)
	CountAlbums(ctx context.Context) (int, error)
	GetAlbum(ctx context.Context, id int64) (Album, bool, error)
	// ListPhotosByAlbum returns the album's photos newest first.
	ListPhotosByAlbum(ctx context.Context, albumID int64, limit, offset int) ([]Photo, error)
	CountPhotosByAlbum(ctx context.Context, albumID int64) (int, error)
	InsertPhoto(ctx context.Context, photo Photo) (int64, error)
}
