package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the stable content hash for a review text: sha256 over the
// lowercased, whitespace-trimmed text, hex-encoded.
func Hash(text string) string {
	normalized := strings.TrimSpace(strings.ToLower(text))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Jaccard computes |intersection| / |union| over whitespace-tokenized,
// lowercased word sets. Defined as 0 when either set is empty.
func Jaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
