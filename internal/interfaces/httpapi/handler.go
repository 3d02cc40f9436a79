package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
)

type Handler struct {
	homeService       *usecase.HomeService
	newsService       *usecase.NewsService
	rosterService     *usecase.RosterService
	managementService *usecase.ManagementService
	matchService      *usecase.MatchService
	standingService   *usecase.StandingService
	calendarService   *usecase.CalendarService
	galleryService    *usecase.GalleryService
	clubService       *usecase.ClubService
	logger            *slog.Logger
	now               func() time.Time
}

func NewHandler(
	homeService *usecase.HomeService,
	newsService *usecase.NewsService,
	rosterService *usecase.RosterService,
	managementService *usecase.ManagementService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	calendarService *usecase.CalendarService,
	galleryService *usecase.GalleryService,
	clubService *usecase.ClubService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		homeService:       homeService,
		newsService:       newsService,
		rosterService:     rosterService,
		managementService: managementService,
		matchService:      matchService,
		standingService:   standingService,
		calendarService:   calendarService,
		galleryService:    galleryService,
		clubService:       clubService,
		logger:            logger,
		now:               time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	home, err := h.homeService.Get(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "get home failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toHomeDTO(home))
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	page, err := pageParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	newsPage, err := h.newsService.List(ctx, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toNewsPageDTO(newsPage))
}

func (h *Handler) GetNewsArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsArticle")
	defer span.End()

	id, err := pathID(r, "newsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	article, err := h.newsService.Get(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "get news article failed", "news_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toNewsArticleDTO(article))
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	roster, err := h.rosterService.ClubRoster(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRosterDTO(roster))
}

func (h *Handler) ListManagement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagement")
	defer span.End()

	members, err := h.managementService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list management failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]managementMemberDTO, 0, len(members))
	for _, member := range members {
		out = append(out, toManagementMemberDTO(member))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatches")
	defer span.End()

	// Malformed league filters degrade to the unfiltered overview.
	var leagueID int64
	if raw := r.URL.Query().Get("league"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			leagueID = parsed
		}
	}

	overview, err := h.matchService.Overview(ctx, h.now(), leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get matches failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchOverviewDTO(overview))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	tables, err := h.standingService.Tables(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingsTableDTO, 0, len(tables))
	for _, table := range tables {
		out = append(out, toStandingsTableDTO(table))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.calendarService.Upcoming(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toEventsDTO(events))
}

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCalendar")
	defer span.End()

	page, err := h.calendarService.Page(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "get calendar failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCalendarPageDTO(page))
}

func (h *Handler) ListGalleryAlbums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGalleryAlbums")
	defer span.End()

	page, err := pageParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	albumPage, err := h.galleryService.ListAlbums(ctx, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list gallery albums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toAlbumPageDTO(albumPage))
}

func (h *Handler) GetGalleryAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGalleryAlbum")
	defer span.End()

	id, err := pathID(r, "albumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, err := pageParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.galleryService.AlbumDetail(ctx, id, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "get gallery album failed", "album_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toAlbumDetailDTO(detail))
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	profile, err := h.clubService.Profile(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "get club profile failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toClubProfileDTO(profile))
}
