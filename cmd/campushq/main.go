package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campushq-api/config"
	"github.com/campushq/campushq-api/internal/bootstrap"
	"github.com/campushq/campushq-api/internal/devseed"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	cfgPtr := &cfg

	logStartupInfo(ctx, logger, cfgPtr)

	db, redisClient, err := initInfrastructure(ctx, cfgPtr, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	if cfg.Postgres.RunMigrationsOnStart {
		if err = bootstrap.RunMigrations(ctx, db, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	services := bootstrap.BuildServices(bootstrap.ServiceDeps{
		Config:      cfgPtr,
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
	})

	if cfg.IsDev {
		seed := devseed.Services{
			Orgs:          services.Orgs,
			Students:      services.Students,
			Notifications: services.Notifications,
			Settings:      services.Settings,
			Exams:         services.Exams,
		}
		if err = devseed.Run(ctx, seed, logger); err != nil {
			logger.WarnContext(ctx, "dev seeding incomplete", "error", err)
		}
	}

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   cfgPtr,
		Services: services,
		DB:       db,
		Logger:   logger,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.InfoContext(ctx, "received shutdown signal", "signal", sig.String())

	return bootstrap.ShutdownHTTPServer(bootstrap.ShutdownConfig{
		Context: ctx,
		Server:  server,
		Logger:  logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting campushq api",
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"auth_mode", cfg.Auth.Mode,
		"base_domain", cfg.Tenancy.BaseDomain)
}

// initInfrastructure connects shared dependencies used by the service runtime.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func initInfrastructure(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (*sql.DB, redis.UniversalClient, error) {
	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect db: %w", err)
	}

	redisClient, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database after redis connect failure", "error", cerr)
			return nil, nil, fmt.Errorf("connect redis: %w", errors.Join(err, fmt.Errorf("close database: %w", cerr)))
		}
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	return db, redisClient, nil
}
