package httpapi

import (
	"net/http"

	"github.com/liborpaciorek/tjhlavnice/internal/admin"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.GetHome)
	mux.HandleFunc("GET /news/{$}", handler.ListNews)
	mux.HandleFunc("GET /news/{newsID}/{$}", handler.GetNewsArticle)
	mux.HandleFunc("GET /team/{$}", handler.GetRoster)
	mux.HandleFunc("GET /management/{$}", handler.ListManagement)
	mux.HandleFunc("GET /matches/{$}", handler.GetMatches)
	mux.HandleFunc("GET /standings/{$}", handler.GetStandings)
	mux.HandleFunc("GET /calendar/{$}", handler.ListEvents)
	mux.HandleFunc("GET /kalendar/{$}", handler.GetCalendar)
	mux.HandleFunc("GET /gallery/{$}", handler.ListGalleryAlbums)
	mux.HandleFunc("GET /gallery/{albumID}/{$}", handler.GetGalleryAlbum)
	mux.HandleFunc("GET /club/{$}", handler.GetClub)
}

func registerFileRoutes(mux *http.ServeMux, cfg RouterConfig) {
	if cfg.MediaRoot != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaRoot))))
	}
	if cfg.StaticRoot != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticRoot))))
	}
}

func registerAdminRoutes(mux *http.ServeMux, adminHandler *admin.Handler, adminToken string) {
	if adminHandler == nil {
		return
	}

	adminMux := http.NewServeMux()
	adminHandler.Register(adminMux)
	mux.Handle("/admin/", RequireAdminToken(adminToken, adminMux))
}
