package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/campushq/campushq-api/config"
	httpx "github.com/campushq/campushq-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Logger   *slog.Logger
}

// dbPinger adapts *sql.DB to the readiness check's Ping signature.
type dbPinger struct{ db *sql.DB }

func (p dbPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:          cfg.Services.Auth,
		StudentAuth:   cfg.Services.StudentAuth,
		Tenants:       cfg.Services.Tenants,
		Orgs:          cfg.Services.Orgs,
		Students:      cfg.Services.Students,
		Notifications: cfg.Services.Notifications,
		Settings:      cfg.Services.Settings,
		Exams:         cfg.Services.Exams,
		CookieDomain:  appCfg.HTTP.CookieDomain,
		BaseDomain:    appCfg.Tenancy.BaseDomain,
		Logger:        logger,
	}
	if cfg.DB != nil {
		services.DB = dbPinger{db: cfg.DB}
	}
	if cfg.Services.Cache != nil {
		services.Cache = cfg.Services.Cache
	}

	handler := httpx.NewRouter(services)

	return startServer(logger, handler, appCfg.HTTP.Addr)
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, 10*time.Second)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
