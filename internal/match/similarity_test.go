package match

import (
	"math"
	"testing"
)

func TestSimilarityIdentity(t *testing.T) {
	inputs := []string{"netflix", "Netflix Premium", "spotify family", "a"}
	for _, s := range inputs {
		if got := Similarity(s, s); got != 1 {
			t.Errorf("Similarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"netflix", "netlfix"},
		{"canva", "capcut"},
		{"spotify", "spotipy"},
		{"disney", "disney+"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similarity(%q,%q)=%v but Similarity(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"", ""},
		{"", "netflix"},
		{"netflix", "zoom"},
		{"youtube premium", "youtube"},
		{"NETFLIX", "netflix"},
	}
	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q,%q) = %v, out of [0,1]", tt.a, tt.b, got)
		}
	}
}

func TestSimilarityCaseAndSpacing(t *testing.T) {
	if got := Similarity("NETFLIX", "netflix"); got != 1 {
		t.Errorf("case-insensitive identity: got %v, want 1", got)
	}
	if got := Similarity("  youtube   premium ", "youtube premium"); got != 1 {
		t.Errorf("whitespace-normalized identity: got %v, want 1", got)
	}
}

func TestSimilarityTypoCloserThanUnrelated(t *testing.T) {
	typo := Similarity("netflix", "netlfix")
	unrelated := Similarity("netflix", "zoom")
	if typo <= unrelated {
		t.Errorf("typo score %v should exceed unrelated score %v", typo, unrelated)
	}
	if typo < 0.7 {
		t.Errorf("transposition typo scored %v, expected >= 0.7", typo)
	}
}

func TestJaccardChars(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{name: "identical", a: "netflix", b: "netflix", min: 1, max: 1},
		{name: "disjoint", a: "abc", b: "xyz", min: 0, max: 0},
		{name: "empty", a: "", b: "netflix", min: 0, max: 0},
		{name: "partial", a: "canva", b: "capcut", min: 0.2, max: 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardChars(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("JaccardChars(%q,%q) = %v, want in [%v,%v]", tt.a, tt.b, got, tt.min, tt.max)
			}
		})
	}
}

func TestWordOverlapRatio(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		input     string
		want      float64
	}{
		{name: "all words present", candidate: "youtube premium", input: "harga youtube premium dong", want: 1},
		{name: "half present", candidate: "youtube premium", input: "mau youtube aja", want: 0.5},
		{name: "contained word", candidate: "netflix", input: "netflixnya error", want: 1},
		{name: "nothing shared", candidate: "spotify", input: "zoom meeting", want: 0},
		{name: "empty input", candidate: "spotify", input: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordOverlapRatio(tt.candidate, tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WordOverlapRatio(%q,%q) = %v, want %v", tt.candidate, tt.input, got, tt.want)
			}
		})
	}
}
