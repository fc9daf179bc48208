package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/dedup"
	"github.com/smartqr/reviewd/internal/export"
	"github.com/smartqr/reviewd/internal/genai"
	"github.com/smartqr/reviewd/internal/genai/gemini"
	"github.com/smartqr/reviewd/internal/genai/openai"
	"github.com/smartqr/reviewd/internal/jobs"
	"github.com/smartqr/reviewd/internal/repository"
	"github.com/smartqr/reviewd/internal/reviews"
	"github.com/smartqr/reviewd/internal/server"
	"github.com/smartqr/reviewd/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := db.Ent.Schema.Create(ctx); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	qrRepo := repository.NewQRCodeRepository(db.Ent, logger)
	tempRepo := repository.NewTempReviewRepository(db.Ent, logger)
	reviewRepo := repository.NewReviewRepository(db.Ent, logger)
	scanLogRepo := repository.NewScanLogRepository(db.Ent, logger)
	analyticsRepo := repository.NewAnalyticsRepository(db, logger)

	// Ordered provider chain: the Gemini models first, then the
	// OpenAI-compatible endpoint if one is configured.
	var providers []genai.Provider
	if cfg.GenAI.GeminiAPIKey != "" {
		for _, model := range cfg.GenAI.GeminiModels {
			providers = append(providers, gemini.NewClient(gemini.Config{
				APIKey:  cfg.GenAI.GeminiAPIKey,
				BaseURL: cfg.GenAI.GeminiBaseURL,
				Model:   model,
				Timeout: cfg.GenAI.Timeout,
			}, logger))
		}
	}
	if cfg.GenAI.OpenAIAPIKey != "" {
		providers = append(providers, openai.NewClient(openai.Config{
			APIKey:  cfg.GenAI.OpenAIAPIKey,
			BaseURL: cfg.GenAI.OpenAIBaseURL,
			Model:   cfg.GenAI.OpenAIModel,
			Timeout: cfg.GenAI.Timeout,
		}, logger))
	}

	// Ephemeral results default to the database table; RESULT_STORE=memory
	// keeps them in process for single-node dev runs. The dedup history
	// always lives wherever the results do.
	var (
		results store.ResultStore   = tempRepo
		history dedup.History       = tempRepo
		sweep   func(context.Context) (int, error)
	)
	if cfg.Jobs.ResultStore == "memory" {
		mem := store.NewMemory()
		results, history = mem, mem
		sweep = func(context.Context) (int, error) { return mem.Sweep(cfg.Jobs.DedupWindow), nil }
	} else {
		sweep = func(ctx context.Context) (int, error) {
			return tempRepo.SweepExpired(ctx, cfg.Jobs.DedupWindow)
		}
	}

	generator := genai.NewGenerator(providers, logger)
	filter := dedup.NewFilter(history, cfg.Jobs.DedupWindow, logger)
	registry := jobs.NewRegistry()

	dispatcher := jobs.NewDispatcher(
		generator,
		filter,
		results,
		scanLogRepo,
		registry,
		jobs.Options{
			MaxAttempts: cfg.Jobs.MaxAttempts,
			ResultTTL:   cfg.Jobs.ResultTTL,
		},
		logger,
		jobs.WithWorkers(cfg.Jobs.Workers),
		jobs.WithQueueSize(cfg.Jobs.QueueSize),
		jobs.WithRunTimeout(cfg.Jobs.RunTimeout),
	)

	finalizer := reviews.NewService(results, reviewRepo, scanLogRepo, logger)
	exporter := export.NewService(reviewRepo, logger)

	go runSweeper(ctx, cfg, sweep, registry, logger)

	srv := server.New(server.Deps{
		Directory:  qrRepo,
		Dispatcher: dispatcher,
		Finalizer:  finalizer,
		Results:    results,
		Registry:   registry,
		Audit:      scanLogRepo,
		Reviews:    reviewRepo,
		Stats:      analyticsRepo,
		Exporter:   exporter,
		Health:     healthFunc(func(ctx context.Context) error { return db.HealthCheck(ctx, 2*time.Second) }),
	}, cfg.Server, cfg.Stream, logger)

	logger.Info("reviewd starting", "addr", cfg.Server.Addr, "providers", len(providers))
	if err := srv.Run(ctx); err != nil {
		logger.Error("http server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	dispatcher.Shutdown(shutdownCtx)
}

// runSweeper periodically retires temp reviews that are expired and past the
// dedup window, and prunes terminal job registry entries.
func runSweeper(ctx context.Context, cfg *common.Config, sweep func(context.Context) (int, error), registry *jobs.Registry, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Jobs.SweepInterval)
	defer ticker.Stop()

	// Streams outlive resolution by at most their timeout; anything ten times
	// older is safe to drop.
	registryMaxAge := 10 * cfg.Stream.Timeout

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := sweep(ctx); err != nil {
				logger.Error("sweep.failed", "error", err)
			} else if n > 0 {
				logger.Info("sweep.ok", "removed", n)
			}
			if n := registry.Prune(registryMaxAge); n > 0 {
				logger.Info("sweep.registry_pruned", "removed", n)
			}
		}
	}
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) HealthCheck(ctx context.Context) error { return f(ctx) }
