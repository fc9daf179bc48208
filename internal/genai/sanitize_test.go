package genai

import (
	"strings"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n ", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCandidate(t *testing.T) {
	raw := "```json\n{\"review_text\":\"Great chai, will come back.\",\"language\":\"english\",\"rating\":5}\n```"
	cand, err := ParseCandidate(raw)
	if err != nil {
		t.Fatalf("ParseCandidate: %v", err)
	}
	if cand.Text != "Great chai, will come back." {
		t.Errorf("text = %q", cand.Text)
	}
	if cand.Language != "english" || cand.Rating != 5 {
		t.Errorf("language/rating = %q/%d", cand.Language, cand.Rating)
	}
}

func TestParseCandidateRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "hello there"},
		{"missing review_text", `{"language":"english","rating":5}`},
		{"rating zero", `{"review_text":"ok","language":"english","rating":0}`},
		{"rating six", `{"review_text":"ok","language":"english","rating":6}`},
		{"rating as string", `{"review_text":"ok","language":"english","rating":"5"}`},
		{"extra field", `{"review_text":"ok","language":"english","rating":5,"mood":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCandidate(tc.in); err == nil {
				t.Errorf("ParseCandidate(%q) accepted invalid payload", tc.in)
			} else if !strings.Contains(err.Error(), "schema validation failed") {
				t.Errorf("unexpected error kind: %v", err)
			}
		})
	}
}
