package genai

// BuildReviewJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Providers must answer with exactly these three fields; anything
// else fails validation and advances the fallback chain.
func BuildReviewJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"review_text": map[string]any{"type": "string", "minLength": 1},
			"language":    map[string]any{"type": "string", "minLength": 1},
			"rating":      map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		},
		"required": []string{"review_text", "language", "rating"},
	}
}
