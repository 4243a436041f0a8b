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

	httpadapter "mesa-decision/internal/adapter/http"
	"mesa-decision/internal/adapter/memory"
	"mesa-decision/internal/adapter/metrics"
	"mesa-decision/internal/adapter/postgres"
	"mesa-decision/internal/adapter/redis"
	"mesa-decision/internal/adapter/usecase"
	"mesa-decision/internal/config"
	"mesa-decision/internal/config/configs"
	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/frequency"
	"mesa-decision/internal/core/port"
	"mesa-decision/internal/db"
	"mesa-decision/internal/scheduler"
	"mesa-decision/internal/telemetry"
)

// main is the entry point of the decision service. It loads configuration,
// optionally runs database migrations, wires the stores, the frequency
// ledger and the decision use case, then serves HTTP until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, cfg.Version, cfg.Env)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err := db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	store, closeStore, err := frequencyStore(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ledger := frequency.NewLedger(store, logger, frequency.WithPolicy(frequency.Policy{
		domain.EventImpression: {Limit: cfg.Frequency.ImpressionLimit, Window: cfg.Frequency.ImpressionWindow},
		domain.EventClick:      {Limit: cfg.Frequency.ClickLimit, Window: cfg.Frequency.ClickWindow},
	}))

	repo := postgres.NewAdRepository(pool)
	prom := metrics.NewPrometheus()
	svc := usecase.NewDecisionUseCase(usecase.Stores{
		Campaigns: repo,
		Ads:       repo,
		AdUnits:   repo,
		History:   repo,
		Outcomes:  postgres.NewOutcomeStore(pool),
	}, ledger, prom, logger,
		usecase.WithTimeout(cfg.Decision.Timeout),
		usecase.WithRecordTimeout(cfg.Decision.RecordTimeout),
		usecase.WithConcurrency(cfg.Decision.Concurrency),
	)

	handler := httpadapter.NewHandler(svc, prom.Handler(), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("frequency_backend", cfg.Frequency.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// frequencyStore builds the configured counter backend. Memory and postgres
// counters are purged by a background sweep; redis counters expire on their
// own.
func frequencyStore(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (port.FrequencyStore, func(), error) {
	noop := func() {}

	switch cfg.Frequency.Backend {
	case configs.FrequencyRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Error("redis close error", slog.Any("error", err))
			}
		}
		return redis.NewFrequencyStore(client, cfg.Redis.KeyPrefix), closeClient, nil

	case configs.FrequencyPostgres:
		store := postgres.NewFrequencyStore(pool)
		if err := scheduler.NewSweepService(store, cfg.Frequency.SweepInterval, logger).Start(ctx); err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	default:
		store := memory.NewFrequencyStore()
		if err := scheduler.NewSweepService(store, cfg.Frequency.SweepInterval, logger).Start(ctx); err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}
}
