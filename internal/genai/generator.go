package genai

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator runs the ordered provider fallback chain: one call per provider,
// first parseable response wins, total exhaustion is terminal. There are no
// per-provider retries.
type Generator struct {
	providers []Provider
	logger    *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(providers []Provider, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		providers: providers,
		logger:    logger,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// samplePolicy draws a prompt policy and variance seed. rand.Rand is not
// safe for concurrent use and workers share one Generator.
func (g *Generator) samplePolicy() (Policy, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return SamplePolicy(g.rng), g.rng.Float64()
}

// GenerateReview implements ReviewGenerator.
func (g *Generator) GenerateReview(ctx context.Context, businessName, productSummary string) (Candidate, error) {
	if len(g.providers) == 0 {
		return Candidate{}, fmt.Errorf("no providers configured")
	}

	rid := uuid.New().String()
	start := time.Now()

	policy, seed := g.samplePolicy()
	prompt := BuildReviewPrompt(businessName, productSummary, policy, seed)

	g.logger.Info("genai.generate.start",
		"req_id", rid,
		"business", businessName,
		"language", policy.Language,
		"rating", policy.Rating,
		"tone", policy.Tone,
		"long_form", policy.LongForm,
		"providers", len(g.providers),
	)

	var lastErr error
	for _, p := range g.providers {
		raw, err := p.Generate(ctx, prompt)
		if err != nil {
			g.logger.Warn("genai.generate.provider_failed",
				"req_id", rid, "provider", p.Name(), "error", err)
			lastErr = err
			continue
		}

		cand, err := ParseCandidate(raw)
		if err != nil {
			g.logger.Warn("genai.generate.parse_failed",
				"req_id", rid, "provider", p.Name(), "error", err)
			lastErr = err
			continue
		}

		g.logger.Info("genai.generate.ok",
			"req_id", rid,
			"provider", p.Name(),
			"language", cand.Language,
			"rating", cand.Rating,
			"text_len", len(cand.Text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return cand, nil
	}

	g.logger.Error("genai.generate.exhausted",
		"req_id", rid,
		"providers", len(g.providers),
		"elapsed_ms", time.Since(start).Milliseconds(),
		"error", lastErr,
	)
	return Candidate{}, fmt.Errorf("all providers failed: %w", lastErr)
}
