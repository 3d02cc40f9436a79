package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
)

type GalleryRepository struct {
	mu     sync.RWMutex
	albums []gallery.Album
	photos []gallery.Photo
	nextID int64
}

func NewGalleryRepository(albums []gallery.Album, photos []gallery.Photo) *GalleryRepository {
	var maxID int64
	for _, p := range photos {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return &GalleryRepository{
		albums: append([]gallery.Album(nil), albums...),
		photos: append([]gallery.Photo(nil), photos...),
		nextID: maxID,
	}
}

func (r *GalleryRepository) ListAlbums(_ context.Context, limit, offset int) ([]gallery.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gallery.Album, 0, len(r.albums))
	for _, a := range r.albums {
		out = append(out, r.decorateAlbum(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(out) {
		end = len(out)
	}

	return out[offset:end], nil
}

func (r *GalleryRepository) CountAlbums(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.albums), nil
}

func (r *GalleryRepository) GetAlbum(_ context.Context, id int64) (gallery.Album, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.albums {
		if a.ID == id {
			return r.decorateAlbum(a), true, nil
		}
	}

	return gallery.Album{}, false, nil
}

func (r *GalleryRepository) ListPhotosByAlbum(_ context.Context, albumID int64, limit, offset int) ([]gallery.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.albumPhotos(albumID)
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(out) {
		end = len(out)
	}

	return out[offset:end], nil
}

func (r *GalleryRepository) CountPhotosByAlbum(_ context.Context, albumID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.albumPhotos(albumID)), nil
}

func (r *GalleryRepository) InsertPhoto(_ context.Context, photo gallery.Photo) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	photo.ID = r.nextID
	r.photos = append(r.photos, photo)

	return photo.ID, nil
}

func (r *GalleryRepository) albumPhotos(albumID int64) []gallery.Photo {
	out := make([]gallery.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		if p.AlbumID == albumID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out
}

func (r *GalleryRepository) decorateAlbum(a gallery.Album) gallery.Album {
	photos := r.albumPhotos(a.ID)
	a.PhotoCount = len(photos)
	if len(photos) > 0 {
		a.CoverPath = photos[0].ImagePath
	}
	return a
}
