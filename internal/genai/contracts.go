package genai

import "context"

// Candidate is the normalized shape we want from a provider.
type Candidate struct {
	Text     string `json:"review_text"`
	Language string `json:"language"`
	Rating   int    `json:"rating"`
}

// Provider is a single generative-text endpoint. Generate sends one prompt
// and returns the raw model output. One call per attempt; retrying is the
// chain's business, not the provider's.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReviewGenerator is the interface the job runner depends on.
type ReviewGenerator interface {
	GenerateReview(ctx context.Context, businessName, productSummary string) (Candidate, error)
}
