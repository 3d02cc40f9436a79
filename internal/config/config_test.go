package config

import (
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env: %s", cfg.AppEnv)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected storage driver: %s", cfg.StorageDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.VisitLogWorkers != 4 {
		t.Fatalf("unexpected visit log workers: %d", cfg.VisitLogWorkers)
	}
	if cfg.CalendarBaseURL != "https://www.googleapis.com/calendar/v3" {
		t.Fatalf("unexpected calendar base url: %s", cfg.CalendarBaseURL)
	}
	if cfg.CalendarTimeout != 10*time.Second {
		t.Fatalf("unexpected calendar timeout: %s", cfg.CalendarTimeout)
	}
	if cfg.MediaRoot != "media" {
		t.Fatalf("unexpected media root: %s", cfg.MediaRoot)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoadRejectsInvalidStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_DRIVER")
	}
}

func TestLoadRequiresAdminTokenInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing ADMIN_TOKEN in prod")
	}

	t.Setenv("ADMIN_TOKEN", "tajny-token")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AdminToken != "tajny-token" {
		t.Fatalf("unexpected admin token: %s", cfg.AdminToken)
	}
}

func TestLoadRequiresUptraceDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing UPTRACE_DSN")
	}
}

func TestLoadReadsUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %s", cfg.UptraceDSN)
	}
}

func TestLoadRejectsNonPositiveVisitLogWorkers(t *testing.T) {
	t.Setenv("VISIT_LOG_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for VISIT_LOG_WORKERS=0")
	}
}

func TestLoadParsesLogLevel(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}
