package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/panjf2000/ants/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/liborpaciorek/tjhlavnice/internal/admin"
	"github.com/liborpaciorek/tjhlavnice/internal/config"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/calendar/google"
	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/media"
	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/repository/memory"
	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/repository/postgres"
	"github.com/liborpaciorek/tjhlavnice/internal/interfaces/httpapi"
	"github.com/liborpaciorek/tjhlavnice/internal/platform/logging"
	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
)

// Application bundles everything cmd/web starts and stops.
type Application struct {
	Server    *http.Server
	visitPool *ants.Pool
	db        *sqlx.DB
}

type repositories struct {
	leagues    league.Repository
	teams      team.Repository
	players    player.Repository
	management management.Repository
	news       news.Repository
	matches    match.Repository
	standings  standing.Repository
	events     event.Repository
	gallery    gallery.Repository
	visits     visit.Repository
	clubInfo   clubinfo.Repository
	mainPage   mainpage.Repository
	calendar   calendar.SettingsRepository
}

func NewApplication(cfg config.Config, logger *logging.Logger, httpLogger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if httpLogger == nil {
		httpLogger = slog.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	mediaStore, err := media.NewStore(cfg.MediaRoot, logger)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("init media store: %w", err)
	}

	calendarClient := google.NewClient(google.ClientConfig{
		BaseURL: cfg.CalendarBaseURL,
		Timeout: cfg.CalendarTimeout,
		Logger:  logger,
	})

	homeService := usecase.NewHomeService(repos.news, repos.mainPage, repos.matches, repos.standings, repos.teams, repos.clubInfo)
	newsService := usecase.NewNewsService(repos.news)
	rosterService := usecase.NewRosterService(repos.teams, repos.players)
	managementService := usecase.NewManagementService(repos.management)
	matchService := usecase.NewMatchService(repos.matches, repos.leagues)
	standingService := usecase.NewStandingService(repos.leagues, repos.standings)
	calendarService := usecase.NewCalendarService(repos.calendar, repos.events, calendarClient)
	galleryService := usecase.NewGalleryService(repos.gallery, repos.events)
	clubService := usecase.NewClubService(repos.clubInfo)
	visitService := usecase.NewVisitService(repos.visits)

	visitPool, err := ants.NewPool(cfg.VisitLogWorkers)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("init visit log pool: %w", err)
	}

	var adminStore admin.Store
	if db != nil {
		adminStore = admin.NewPostgresStore(db)
	} else {
		adminStore = admin.NewMemoryStore()
	}
	adminHandler := admin.NewHandler(
		admin.NewRegistry(),
		adminStore,
		mediaStore,
		galleryService,
		logger,
		cfg.MediaMaxUploadBytes,
	)

	handler := httpapi.NewHandler(
		homeService,
		newsService,
		rosterService,
		managementService,
		matchService,
		standingService,
		calendarService,
		galleryService,
		clubService,
		httpLogger,
	)
	router := httpapi.NewRouter(handler, adminHandler, visitPool, visitService, httpLogger, httpapi.RouterConfig{
		AdminToken:         cfg.AdminToken,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MediaRoot:          mediaStore.Root(),
		StaticRoot:         cfg.StaticRoot,
	})

	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		visitPool.Release()
		closeDB(db)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Application{
		Server:    server,
		visitPool: visitPool,
		db:        db,
	}, nil
}

// Shutdown stops the HTTP server, drains the visit log pool and closes the
// database connection.
func (a *Application) Shutdown(ctx context.Context) error {
	var combined error

	if err := a.Server.Shutdown(ctx); err != nil {
		combined = errors.CombineErrors(combined, fmt.Errorf("shutdown http server: %w", err))
	}

	a.visitPool.Release()

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			combined = errors.CombineErrors(combined, fmt.Errorf("close database: %w", err))
		}
	}

	return combined
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.StorageDriver == config.StorageMemory {
		store := memory.NewSeededStore(time.Now().UTC())
		logger.Info("storage driver", "driver", config.StorageMemory)
		return repositories{
			leagues:    store.Leagues,
			teams:      store.Teams,
			players:    store.Players,
			management: store.Management,
			news:       store.News,
			matches:    store.Matches,
			standings:  store.Standings,
			events:     store.Events,
			gallery:    store.Gallery,
			visits:     store.Visits,
			clubInfo:   store.ClubInfo,
			mainPage:   store.MainPage,
			calendar:   store.Calendar,
		}, nil, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("storage driver", "driver", config.StoragePostgres, "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		leagues:    postgres.NewLeagueRepository(db),
		teams:      postgres.NewTeamRepository(db),
		players:    postgres.NewPlayerRepository(db),
		management: postgres.NewManagementRepository(db),
		news:       postgres.NewNewsRepository(db),
		matches:    postgres.NewMatchRepository(db),
		standings:  postgres.NewStandingRepository(db),
		events:     postgres.NewEventRepository(db),
		gallery:    postgres.NewGalleryRepository(db),
		visits:     postgres.NewVisitRepository(db),
		clubInfo:   postgres.NewClubInfoRepository(db),
		mainPage:   postgres.NewMainPageRepository(db),
		calendar:   postgres.NewCalendarSettingsRepository(db),
	}, db, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		return nil, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", config.StoragePostgres)
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB) {
	if db != nil {
		_ = db.Close()
	}
}
