package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFence removes a wrapping markdown code fence from model output.
// Providers routinely fence JSON replies even when told not to.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseCandidate turns raw provider output into a validated Candidate.
// It strips fencing, validates strictly against the review schema, and only
// then unmarshals. Any failure here is a provider failure: the caller moves
// on to the next endpoint in the chain.
func ParseCandidate(raw string) (Candidate, error) {
	cleaned := []byte(StripCodeFence(raw))

	if err := ValidateJSONAgainstSchema(BuildReviewJSONSchema(), cleaned); err != nil {
		return Candidate{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var out Candidate
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return Candidate{}, fmt.Errorf("unmarshal candidate: %w", err)
	}
	return out, nil
}
