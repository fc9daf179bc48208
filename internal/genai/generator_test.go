package genai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubProvider struct {
	name  string
	out   string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

const goodPayload = `{"review_text":"Lovely spot, quick service.","language":"english","rating":4}`

func TestGenerateReviewFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "a", out: goodPayload}
	second := &stubProvider{name: "b", out: goodPayload}
	g := NewGenerator([]Provider{first, second}, nil)

	cand, err := g.GenerateReview(context.Background(), "Chai Point", "masala chai")
	if err != nil {
		t.Fatalf("GenerateReview: %v", err)
	}
	if cand.Rating != 4 {
		t.Errorf("rating = %d", cand.Rating)
	}
	if first.calls != 1 || second.calls != 0 {
		t.Errorf("calls = %d/%d, want 1/0", first.calls, second.calls)
	}
}

func TestGenerateReviewFallsThroughOnError(t *testing.T) {
	first := &stubProvider{name: "a", err: errors.New("quota exceeded")}
	second := &stubProvider{name: "b", out: "```json\n" + goodPayload + "\n```"}
	g := NewGenerator([]Provider{first, second}, nil)

	cand, err := g.GenerateReview(context.Background(), "Chai Point", "")
	if err != nil {
		t.Fatalf("GenerateReview: %v", err)
	}
	if cand.Text == "" {
		t.Error("empty candidate text")
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
}

func TestGenerateReviewFallsThroughOnBadPayload(t *testing.T) {
	first := &stubProvider{name: "a", out: "sorry, I cannot help with that"}
	second := &stubProvider{name: "b", out: goodPayload}
	g := NewGenerator([]Provider{first, second}, nil)

	if _, err := g.GenerateReview(context.Background(), "Chai Point", ""); err != nil {
		t.Fatalf("GenerateReview: %v", err)
	}
	if second.calls != 1 {
		t.Errorf("second provider calls = %d, want 1", second.calls)
	}
}

func TestGenerateReviewExhaustion(t *testing.T) {
	first := &stubProvider{name: "a", err: errors.New("boom")}
	second := &stubProvider{name: "b", err: errors.New("also boom")}
	g := NewGenerator([]Provider{first, second}, nil)

	_, err := g.GenerateReview(context.Background(), "Chai Point", "")
	if err == nil {
		t.Fatal("expected error after exhausting providers")
	}
	if !strings.Contains(err.Error(), "all providers failed") {
		t.Errorf("unexpected error: %v", err)
	}
	// Each provider gets exactly one call per generation; no per-provider
	// retries.
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
}

func TestGenerateReviewNoProviders(t *testing.T) {
	g := NewGenerator(nil, nil)
	if _, err := g.GenerateReview(context.Background(), "Chai Point", ""); err == nil {
		t.Fatal("expected error with no providers")
	}
}
