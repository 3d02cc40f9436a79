package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
)

const (
	galleryAlbumPageSize = 12
	galleryPhotoPageSize = 12
)

// AlbumPage is one page of the gallery index.
type AlbumPage struct {
	Albums     []gallery.Album
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// AlbumDetail is one album with a page of its photos.
type AlbumDetail struct {
	Album      gallery.Album
	Photos     []gallery.Photo
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// BulkUploadInput describes one bulk photo intake. Paths are media paths of
// files already stored on disk, in upload order.
type BulkUploadInput struct {
	AlbumID     int64
	EventID     *int64
	TitlePrefix string
	Paths       []string
}

type GalleryService struct {
	galleryRepo gallery.Repository
	eventRepo   event.Repository
	now         func() time.Time
}

func NewGalleryService(galleryRepo gallery.Repository, eventRepo event.Repository) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

func (s *GalleryService) ListAlbums(ctx context.Context, page int) (AlbumPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.ListAlbums")
	defer span.End()

	if page < 1 {
		page = 1
	}

	total, err := s.galleryRepo.CountAlbums(ctx)
	if err != nil {
		return AlbumPage{}, fmt.Errorf("count albums: %w", err)
	}

	totalPages := pageCount(total, galleryAlbumPageSize)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	albums, err := s.galleryRepo.ListAlbums(ctx, galleryAlbumPageSize, (page-1)*galleryAlbumPageSize)
	if err != nil {
		return AlbumPage{}, fmt.Errorf("list albums: %w", err)
	}

	return AlbumPage{
		Albums:     albums,
		Page:       page,
		PageSize:   galleryAlbumPageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func (s *GalleryService) AlbumDetail(ctx context.Context, albumID int64, page int) (AlbumDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.AlbumDetail")
	defer span.End()

	if albumID <= 0 {
		return AlbumDetail{}, fmt.Errorf("%w: album id must be positive", ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}

	album, exists, err := s.galleryRepo.GetAlbum(ctx, albumID)
	if err != nil {
		return AlbumDetail{}, fmt.Errorf("get album: %w", err)
	}
	if !exists {
		return AlbumDetail{}, fmt.Errorf("%w: album=%d", ErrNotFound, albumID)
	}

	total, err := s.galleryRepo.CountPhotosByAlbum(ctx, albumID)
	if err != nil {
		return AlbumDetail{}, fmt.Errorf("count album photos: %w", err)
	}

	totalPages := pageCount(total, galleryPhotoPageSize)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	photos, err := s.galleryRepo.ListPhotosByAlbum(ctx, albumID, galleryPhotoPageSize, (page-1)*galleryPhotoPageSize)
	if err != nil {
		return AlbumDetail{}, fmt.Errorf("list album photos: %w", err)
	}

	return AlbumDetail{
		Album:      album,
		Photos:     photos,
		Page:       page,
		PageSize:   galleryPhotoPageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// BulkAddPhotos records one photo row per stored file, titled
// "{prefix} {n}" with n counting from one in upload order. Returns the
// number of photos created.
func (s *GalleryService) BulkAddPhotos(ctx context.Context, input BulkUploadInput) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.BulkAddPhotos")
	defer span.End()

	if input.AlbumID <= 0 {
		return 0, fmt.Errorf("%w: album id must be positive", ErrInvalidInput)
	}
	if len(input.Paths) == 0 {
		return 0, fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}

	prefix := strings.TrimSpace(input.TitlePrefix)
	if prefix == "" {
		prefix = "Fotka"
	}

	_, exists, err := s.galleryRepo.GetAlbum(ctx, input.AlbumID)
	if err != nil {
		return 0, fmt.Errorf("get album: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: album=%d", ErrNotFound, input.AlbumID)
	}

	if input.EventID != nil {
		_, found, err := s.eventRepo.GetByID(ctx, *input.EventID)
		if err != nil {
			return 0, fmt.Errorf("get event: %w", err)
		}
		if !found {
			return 0, fmt.Errorf("%w: event=%d", ErrNotFound, *input.EventID)
		}
	}

	uploadedAt := s.now().UTC()
	for i, path := range input.Paths {
		photo := gallery.Photo{
			AlbumID:    input.AlbumID,
			EventID:    input.EventID,
			Title:      fmt.Sprintf("%s %d", prefix, i+1),
			ImagePath:  path,
			UploadedAt: uploadedAt,
		}
		if err := photo.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, err := s.galleryRepo.InsertPhoto(ctx, photo); err != nil {
			return 0, fmt.Errorf("insert photo %d: %w", i+1, err)
		}
	}

	return len(input.Paths), nil
}
