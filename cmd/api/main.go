package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/srgjo27/seats_suggestions/internal/adapter/handler"
	"github.com/srgjo27/seats_suggestions/internal/adapter/repository/postgres"
	"github.com/srgjo27/seats_suggestions/internal/adapter/repository/redis"
	"github.com/srgjo27/seats_suggestions/internal/core/services"
	"github.com/srgjo27/seats_suggestions/internal/platform/config"
	"github.com/srgjo27/seats_suggestions/internal/platform/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		logger.Warn("failed to read .env, using process environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		DBName:          cfg.DBName,
		SSLMode:         cfg.DBSSLMode,
		MaxRetries:      5,
		RetryInterval:   2 * time.Second,
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
	}, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	logger.Info("connecting to redis", "addr", cfg.RedisAddr())
	redisClient := goredis.NewClient(&goredis.Options{
		Addr: cfg.RedisAddr(),
		DB:   cfg.RedisDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		// The layout cache degrades to direct reads, so a missing Redis is not fatal.
		logger.Warn("redis unreachable, layout cache will fall through", "error", err)
	}

	auditoriumRepo := postgres.NewAuditoriumRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	layouts := redis.NewLayoutCache(auditoriumRepo, redisClient, cfg.LayoutCacheTTL, logger)

	allocator := services.NewSeatAllocator(
		auditoriumRepo,
		layouts,
		reservationRepo,
		services.WithIsolationBuffer(cfg.IsolationBuffer),
	)

	suggestionHandler := handler.NewSuggestionHandler(allocator, logger)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.NewRouter(suggestionHandler, healthHandler, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.HTTPAddr, "isolation_buffer", cfg.IsolationBuffer)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exiting")
	return nil
}
