package dedup

import "testing"

func TestHashNormalizes(t *testing.T) {
	a := Hash("Great Food and Service!")
	b := Hash("  great food and service!  ")
	if a != b {
		t.Error("hash should ignore case and surrounding whitespace")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == Hash("great food and service") {
		t.Error("different texts should hash differently")
	}
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "the food was great", "the food was great", 1},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"both empty", "", "", 0},
		{"one empty", "hello", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Jaccard(tc.a, tc.b); got != tc.want {
				t.Errorf("Jaccard = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestJaccardPartialOverlap(t *testing.T) {
	// {a b c d} vs {a b c e}: 3 shared of 5 distinct.
	got := Jaccard("a b c d", "a b c e")
	if got < 0.59 || got > 0.61 {
		t.Errorf("Jaccard = %v, want 0.6", got)
	}
}

func TestJaccardCaseInsensitive(t *testing.T) {
	if got := Jaccard("Great Food", "great food"); got != 1 {
		t.Errorf("Jaccard = %v, want 1", got)
	}
}
