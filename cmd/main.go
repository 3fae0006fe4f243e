package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"campaign-dashboard/internal/adapter/cache"
	"campaign-dashboard/internal/adapter/http"
	"campaign-dashboard/internal/adapter/postgres"
	"campaign-dashboard/internal/adapter/security"
	"campaign-dashboard/internal/adapter/usecase"
	"campaign-dashboard/internal/config"
	"campaign-dashboard/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires repositories, the channel cache and use cases, then serves HTTP
// until SIGINT or SIGTERM and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		seeded, err := db.Seed(ctx, pool)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seed finished", slog.Bool("inserted", seeded))
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	channelRepo := postgres.NewChannelRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	channelCache := cache.NewChannelCache(channelRepo)
	if err = channelCache.Warm(ctx); err != nil {
		// the first filtered list retries the load
		logger.Warn("channel cache warm-up failed", slog.Any("error", err))
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Campaigns: usecase.NewCampaignUseCase(campaignRepo, channelRepo, channelCache),
		Channels:  usecase.NewChannelUseCase(channelRepo, channelCache),
		Auth: usecase.NewAuthUseCase(
			userRepo,
			security.NewBcryptHasher(cfg.Auth.BcryptCost),
			security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		),
		Health: pool,
		CORS:   cfg.CORS,
	}, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		exitCode = 128 + int(sig.(syscall.Signal))
	case err := <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
}
