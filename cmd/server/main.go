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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/nvalerio/wearsync/internal/client/fitbit"
	"github.com/nvalerio/wearsync/internal/client/whoop"
	"github.com/nvalerio/wearsync/internal/config"
	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/migrations/postgres"
	"github.com/nvalerio/wearsync/internal/oauth"
	xredis "github.com/nvalerio/wearsync/internal/redis"
	"github.com/nvalerio/wearsync/internal/repository"
	"github.com/nvalerio/wearsync/internal/server"
	"github.com/nvalerio/wearsync/internal/storage"
	"github.com/nvalerio/wearsync/internal/xslog"
	"github.com/nvalerio/wearsync/internal/xsync"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Environment.IsDevelopment() {
		logger = xslog.NewTextLogger(os.Stdout, xslog.FromEnv())
		slog.SetDefault(logger)
	}

	pool, err := initPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer pool.Close()

	tokenCache := initTokenCache(ctx, cfg, logger)

	repo := repository.New(pool)

	manager := oauth.NewManager(oauth.Configs(cfg), repo.Tokens, repo.Users, tokenCache, logger)

	fitbitClient := fitbit.New(manager.SourceFor(domain.ProviderFitbit), fitbit.WithLogger(logger))
	whoopClient := whoop.New(manager.SourceFor(domain.ProviderWhoop), whoop.WithLogger(logger))

	syncService := xsync.NewService(xsync.Stores{
		Users:      repo.Users,
		Activities: repo.Activities,
		HeartRates: repo.HeartRates,
		Sleeps:     repo.Sleeps,
		Weights:    repo.Weights,
	}, fitbitClient, whoopClient, logger)

	handler := server.NewHandler(
		manager,
		syncService,
		repo.Users,
		server.NewRepositoryData(repo),
		cfg.FrontendURL,
		logger,
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute, // historical syncs are slow
		IdleTimeout:       60 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initPostgres(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.InfoContext(ctx, "initializing PostgreSQL")

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := postgres.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return pool, nil
}

// initTokenCache prefers Redis and falls back to an in-process cache
// when no REDIS_URL is configured or Redis is unreachable.
func initTokenCache(ctx context.Context, cfg config.Config, logger *slog.Logger) storage.TokenCache {
	if cfg.RedisURL == "" {
		logger.InfoContext(ctx, "no redis url configured, using in-memory token cache")
		return storage.NewMemoryTokenCache()
	}

	client, err := xredis.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.WarnContext(ctx, "redis unavailable, using in-memory token cache", xslog.Error(err))
		return storage.NewMemoryTokenCache()
	}

	logger.InfoContext(ctx, "initializing redis token cache")
	return storage.NewRedisTokenCache(client)
}
