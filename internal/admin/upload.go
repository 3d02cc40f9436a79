package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/media"
	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
)

var uploadKinds = map[media.Kind]bool{
	media.KindClubLogo:        true,
	media.KindTeamFlag:        true,
	media.KindPlayerPhoto:     true,
	media.KindManagementPhoto: true,
	media.KindNewsImage:       true,
	media.KindGalleryPhoto:    true,
}

// upload stores one image and returns its media path for use in a record
// field. Stored images are downscaled to the kind's bound on the way in.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	kind := media.Kind(r.PathValue("kind"))
	if !uploadKinds[kind] {
		writeError(w, http.StatusNotFound, "neznámý typ souboru")
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "neplatný obsah formuláře")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "chybí soubor")
		return
	}
	defer file.Close()

	path, err := h.media.Save(r.Context(), kind, header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "soubor se nepodařilo uložit")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}

type bulkUploadResponse struct {
	Created int               `json:"created"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// bulkUpload fans one multipart request out into individual gallery photo
// records, one per uploaded image, titled "{prefix} {n}" in upload order.
// Files that fail to store are reported per name; the rest still go in.
func (h *Handler) bulkUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "neplatný obsah formuláře")
		return
	}

	// The target album may be pre-filled through the query string.
	rawAlbum := strings.TrimSpace(r.FormValue("album"))
	if rawAlbum == "" {
		rawAlbum = strings.TrimSpace(r.URL.Query().Get("album"))
	}
	albumID, err := strconv.ParseInt(rawAlbum, 10, 64)
	if err != nil || albumID <= 0 {
		writeError(w, http.StatusBadRequest, "neplatné album")
		return
	}

	var eventID *int64
	if raw := strings.TrimSpace(r.FormValue("event")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "neplatná událost")
			return
		}
		eventID = &id
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["images"]) == 0 {
		writeError(w, http.StatusBadRequest, "je vyžadován alespoň jeden obrázek")
		return
	}

	fileErrs := map[string]string{}
	paths := make([]string, 0, len(r.MultipartForm.File["images"]))
	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			fileErrs[header.Filename] = "soubor se nepodařilo přečíst"
			continue
		}
		path, err := h.media.Save(r.Context(), media.KindGalleryPhoto, header.Filename, file)
		file.Close()
		if err != nil {
			fileErrs[header.Filename] = "soubor se nepodařilo uložit"
			continue
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		writeJSON(w, http.StatusBadRequest, bulkUploadResponse{Errors: fileErrs})
		return
	}

	created, err := h.gallery.BulkAddPhotos(r.Context(), usecase.BulkUploadInput{
		AlbumID:     albumID,
		EventID:     eventID,
		TitlePrefix: r.FormValue("title_prefix"),
		Paths:       paths,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeError(w, http.StatusNotFound, "album nebo událost nebyly nalezeny")
		case errors.Is(err, usecase.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "neplatná data formuláře")
		default:
			h.storeError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, bulkUploadResponse{
		Created: created,
		Errors:  fileErrs,
	})
}
