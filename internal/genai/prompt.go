package genai

import (
	"fmt"
	"strings"
)

// BuildReviewPrompt composes the full generation prompt for one attempt.
// The same prompt is sent to every provider in the fallback chain.
func BuildReviewPrompt(businessName, productSummary string, p Policy, seed float64) string {
	if strings.TrimSpace(productSummary) == "" {
		productSummary = businessName
	}

	mistakes := "Use casual, conversational grammar. Avoid overly polished or robotic sentences."
	if p.Imperfections {
		mistakes = "Include 1-2 minor imperfections (e.g., lowercase start, missing punctuation, " +
			"or common slang like 'awsm', 'gr8') to make it look authentic."
	}

	length := "Keep it short and punchy (1-3 sentences max)."
	lengthLabel := "SHORT (1-3 lines)"
	if p.LongForm {
		length = "Write a detailed, comprehensive review (more than 400 words). Go into depth about " +
			"the experience, specific items/services, atmosphere, and value for money. Use paragraphs."
		lengthLabel = "LONG (>400 words)"
	}

	parts := []string{
		"Generate a genuine, human-like customer review for the following business.",
		"",
		"Business Name: " + businessName,
		"Product/Service: " + productSummary,
		fmt.Sprintf("Target Language: %s (STRICTLY OUTPUT THE REVIEW TEXT IN THIS LANGUAGE)", p.Language),
		"Tone: " + p.Tone,
		fmt.Sprintf("Target Rating: %d / 5", p.Rating),
		"Length Requirement: " + lengthLabel,
		fmt.Sprintf("RandomSeed: %f (Ignore this, used for variance)", seed),
		"",
		"CRITICAL INSTRUCTIONS:",
		"1. Make it sound like a REAL person, not a bot. Use natural phrasing.",
		"2. " + mistakes,
		"3. LENGTH RULE: " + length,
		"4. Mention a specific detail relevant to the business (e.g., if it's a cafe, mention the coffee or vibe; if a shop, mention the staff).",
		"5. STRICTLY RETURN ONLY A JSON OBJECT.",
		fmt.Sprintf("6. ENSURE THE REVIEW IS IN THE TARGET LANGUAGE (%s) ONLY. Do not mix languages unless requested (e.g. Hinglish).", p.Language),
		fmt.Sprintf("7. RATING RULE: The review text MUST match the rating of %d stars.", p.Rating),
		"",
		"Format:",
		"{",
		`  "review_text": "your unique review text here",`,
		fmt.Sprintf(`  "language": "%s",`, p.Language),
		fmt.Sprintf(`  "rating": %d`, p.Rating),
		"}",
		"",
		"Do not include markdown formatting or explanations. Just the JSON.",
	}
	return strings.Join(parts, "\n")
}
