package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/liborpaciorek/tjhlavnice/internal/admin"
	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
	"github.com/panjf2000/ants/v2"
)

// RouterConfig carries everything the router needs beside the handlers.
type RouterConfig struct {
	AdminToken         string
	CORSAllowedOrigins []string
	MediaRoot          string
	StaticRoot         string
}

func NewRouter(
	handler *Handler,
	adminHandler *admin.Handler,
	visitPool *ants.Pool,
	visitService *usecase.VisitService,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerFileRoutes(mux, cfg)
	registerAdminRoutes(mux, adminHandler, cfg.AdminToken)

	chain := recoverPanic(logger, mux)
	chain = VisitLogging(visitPool, visitService, logger, chain)
	chain = CORS(cfg.CORSAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)

	return RequestTracing(chain)
}

func recoverPanic(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
