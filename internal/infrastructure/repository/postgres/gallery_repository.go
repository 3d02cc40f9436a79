package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type GalleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func albumSelect() *qb.SelectBuilder {
	return qb.Select(
		"a.id", "a.title", "a.description", "a.created_at",
		"(SELECT COUNT(*) FROM gallery_photos p WHERE p.album_id = a.id) AS photo_count",
		"COALESCE((SELECT p.image FROM gallery_photos p WHERE p.album_id = a.id ORDER BY p.uploaded_at DESC, p.id DESC LIMIT 1), '') AS cover_path",
	).From("gallery_albums a")
}

func (r *GalleryRepository) ListAlbums(ctx context.Context, limit, offset int) ([]gallery.Album, error) {
	query, args, err := albumSelect().
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select albums query: %w", err)
	}

	var rows []galleryAlbumTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}

	out := make([]gallery.Album, 0, len(rows))
	for _, row := range rows {
		out = append(out, albumFromRow(row))
	}

	return out, nil
}

func (r *GalleryRepository) CountAlbums(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("gallery_albums").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count albums query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count albums: %w", err)
	}

	return count, nil
}

func (r *GalleryRepository) GetAlbum(ctx context.Context, id int64) (gallery.Album, bool, error) {
	query, args, err := albumSelect().
		Where(qb.Eq("a.id", id)).
		ToSQL()
	if err != nil {
		return gallery.Album{}, false, fmt.Errorf("build get album query: %w", err)
	}

	var row galleryAlbumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gallery.Album{}, false, nil
		}
		return gallery.Album{}, false, fmt.Errorf("get album: %w", err)
	}

	return albumFromRow(row), true, nil
}

func (r *GalleryRepository) ListPhotosByAlbum(ctx context.Context, albumID int64, limit, offset int) ([]gallery.Photo, error) {
	query, args, err := qb.Select("*").From("gallery_photos").
		Where(qb.Eq("album_id", albumID)).
		OrderBy("uploaded_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select album photos query: %w", err)
	}

	var rows []galleryPhotoTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select album photos: %w", err)
	}

	out := make([]gallery.Photo, 0, len(rows))
	for _, row := range rows {
		out = append(out, photoFromRow(row))
	}

	return out, nil
}

func (r *GalleryRepository) CountPhotosByAlbum(ctx context.Context, albumID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("gallery_photos").
		Where(qb.Eq("album_id", albumID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count album photos query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count album photos: %w", err)
	}

	return count, nil
}

func (r *GalleryRepository) InsertPhoto(ctx context.Context, photo gallery.Photo) (int64, error) {
	query, args, err := qb.InsertInto("gallery_photos").
		Columns("album_id", "event_id", "title", "description", "image", "uploaded_at").
		Values(photo.AlbumID, ptrToNullInt64(photo.EventID), photo.Title, photo.Description, photo.ImagePath, photo.UploadedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert photo query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert photo: %w", err)
	}

	return id, nil
}

func albumFromRow(row galleryAlbumTableModel) gallery.Album {
	return gallery.Album{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		PhotoCount:  row.PhotoCount,
		CoverPath:   row.CoverPath,
	}
}

func photoFromRow(row galleryPhotoTableModel) gallery.Photo {
	return gallery.Photo{
		ID:          row.ID,
		AlbumID:     row.AlbumID,
		EventID:     nullInt64ToPtr(row.EventID),
		Title:       row.Title,
		Description: row.Description,
		ImagePath:   row.Image,
		UploadedAt:  row.UploadedAt,
	}
}
