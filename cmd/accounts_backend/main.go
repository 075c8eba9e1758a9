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

	"github.com/SscSPs/accounts_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
	"github.com/SscSPs/accounts_service/internal/core/services"
	redisevents "github.com/SscSPs/accounts_service/internal/events"
	"github.com/SscSPs/accounts_service/internal/handlers"
	"github.com/SscSPs/accounts_service/internal/platform/config"
	"github.com/SscSPs/accounts_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/accounts_service/internal/repositories/memory"
	"github.com/SscSPs/accounts_service/pkg/database"
	"github.com/SscSPs/accounts_service/pkg/redisclient"
)

const shutdownTimeout = 10 * time.Second

// @title Accounts Service API
// @version 1.0
// @description Account records with owner-scoped deposit and withdraw.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := setupStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize account store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, extraChecks, closeEvents, err := setupEvents(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize event publisher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeEvents()

	serviceContainer := services.NewServiceContainer(cfg, repos, publisher, extraChecks)

	r, err := handlers.NewRouter(cfg, serviceContainer, logger)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// setupStore selects the account store named by STORE_DRIVER.
func setupStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory account store; data is lost on restart")
		return portsrepo.RepositoryProvider{AccountRepo: memory.NewAccountRepository()}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, database.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnectTimeout,
	})
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// setupEvents connects the Redis Streams publisher when REDIS_ADDR is set.
func setupEvents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (events.AccountEventPublisher, map[string]portsrepo.HealthChecker, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set; account events are disabled")
		return events.NoopPublisher{}, nil, func() {}, nil
	}

	client, closer, err := redisclient.New(ctx, redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	publisher := redisevents.NewRedisStreamPublisher(client, cfg.EventsStream)
	logger.Info("Publishing account events", slog.String("stream", cfg.EventsStream))
	return publisher, map[string]portsrepo.HealthChecker{"event stream": publisher}, closer, nil
}
