package genai

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSamplePolicyVocabulary(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		p := SamplePolicy(r)

		if p.Rating < 1 || p.Rating > 5 {
			t.Fatalf("rating out of range: %d", p.Rating)
		}
		if !slices.Contains(Languages, p.Language) {
			t.Fatalf("unknown language %q", p.Language)
		}
		if p.Rating <= 3 {
			if !slices.Contains(CriticalTones, p.Tone) {
				t.Fatalf("rating %d sampled non-critical tone %q", p.Rating, p.Tone)
			}
		} else if !slices.Contains(Tones, p.Tone) {
			t.Fatalf("rating %d sampled unexpected tone %q", p.Rating, p.Tone)
		}
	}
}

func TestSamplePolicyRatingSkew(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	const n = 20000
	high := 0
	long := 0
	imperfect := 0
	for i := 0; i < n; i++ {
		p := SamplePolicy(r)
		if p.Rating >= 4 {
			high++
		}
		if p.LongForm {
			long++
		}
		if p.Imperfections {
			imperfect++
		}
	}

	// 85% of the mass should land on ratings 4-5; allow a loose band since
	// the draw is random.
	if ratio := float64(high) / n; ratio < 0.82 || ratio > 0.88 {
		t.Errorf("high-rating ratio = %.3f, want ~0.85", ratio)
	}
	if ratio := float64(long) / n; ratio < 0.17 || ratio > 0.23 {
		t.Errorf("long-form ratio = %.3f, want ~0.20", ratio)
	}
	if ratio := float64(imperfect) / n; ratio < 0.27 || ratio > 0.33 {
		t.Errorf("imperfections ratio = %.3f, want ~0.30", ratio)
	}
}
