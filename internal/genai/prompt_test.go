package genai

import (
	"strings"
	"testing"
)

func TestBuildReviewPrompt(t *testing.T) {
	p := Policy{Tone: "casual", Language: "hinglish", Rating: 5, LongForm: false, Imperfections: false}
	prompt := BuildReviewPrompt("Chai Point", "masala chai and snacks", p, 0.5)

	for _, want := range []string{
		"Business Name: Chai Point",
		"Product/Service: masala chai and snacks",
		"Target Language: hinglish",
		"Tone: casual",
		"Target Rating: 5 / 5",
		"SHORT (1-3 lines)",
		`"review_text"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildReviewPromptLongFormAndImperfections(t *testing.T) {
	p := Policy{Tone: "detailed", Language: "english", Rating: 4, LongForm: true, Imperfections: true}
	prompt := BuildReviewPrompt("Dosa Corner", "", p, 0.1)

	if !strings.Contains(prompt, "LONG (>400 words)") {
		t.Error("prompt missing long-form instruction")
	}
	if !strings.Contains(prompt, "minor imperfections") {
		t.Error("prompt missing imperfections instruction")
	}
	// Empty product summary falls back to the business name.
	if !strings.Contains(prompt, "Product/Service: Dosa Corner") {
		t.Error("empty summary should fall back to the business name")
	}
}
