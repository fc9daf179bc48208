package genai

import "math/rand"

// Prompt vocabularies. The critical set replaces the sampled tone whenever
// the target rating lands at 3 or below.
var (
	Tones = []string{
		"casual", "grateful", "impressed", "short and sweet",
		"detailed", "enthusiastic", "humorous", "direct",
	}
	CriticalTones = []string{
		"disappointed", "frustrated", "average", "honest", "critical",
	}
	Languages = []string{"english", "hindi", "hinglish", "gujarati"}
)

// Policy is one sampled prompt configuration. Sampling is separated from
// prompt assembly so the weighted choices are testable without a backend.
type Policy struct {
	Tone          string
	Language      string
	Rating        int  // 1..5; 85% mass on {4,5}
	LongForm      bool // >400 words when set; 1-3 sentences otherwise (20%)
	Imperfections bool // allow 1-2 minor authenticity flaws (30%)
}

// SamplePolicy draws every hidden variable independently from r.
func SamplePolicy(r *rand.Rand) Policy {
	p := Policy{
		Tone:          Tones[r.Intn(len(Tones))],
		Language:      Languages[r.Intn(len(Languages))],
		Imperfections: r.Float64() < 0.3,
		LongForm:      r.Float64() < 0.2,
	}

	if r.Float64() < 0.85 {
		p.Rating = 4 + r.Intn(2)
	} else {
		p.Rating = 1 + r.Intn(3)
	}
	if p.Rating <= 3 {
		p.Tone = CriticalTones[r.Intn(len(CriticalTones))]
	}
	return p
}
