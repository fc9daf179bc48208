package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/genai"
	"github.com/smartqr/reviewd/internal/genai/gemini"
	"github.com/smartqr/reviewd/internal/genai/openai"
	"github.com/smartqr/reviewd/internal/repository"
)

// genreview exercises the provider chain against a registered entity without
// going through the job pipeline: generate N candidates and print them.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: genreview <qr_code_id> [times]")
		os.Exit(2)
	}
	qrID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid qr_code_id", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	times := 1
	if len(os.Args) >= 3 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			times = n
		}
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	qrRepo := repository.NewQRCodeRepository(db.Ent, logger)
	qr, err := qrRepo.GetByID(ctx, qrID)
	if err != nil {
		logger.Error("load qr code", "qr_code_id", qrID, "error", err)
		os.Exit(1)
	}

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
	gen := genai.NewGenerator(providers, logger)

	enc := json.NewEncoder(os.Stdout)
	for i := 1; i <= times; i++ {
		cand, err := gen.GenerateReview(ctx, qr.BusinessName, qr.ProductSummary)
		if err != nil {
			logger.Error("generate failed", "run", i, "error", err)
			continue
		}
		_ = enc.Encode(map[string]any{
			"run":         i,
			"business":    qr.BusinessName,
			"review_text": cand.Text,
			"language":    cand.Language,
			"rating":      cand.Rating,
		})
	}
}
