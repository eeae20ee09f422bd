package match

import "testing"

func TestIsValidMatchShortInput(t *testing.T) {
	v := NewDefaultValidator()

	if v.IsValidMatch("yt", "youtube", 0.5) {
		t.Error("two-char input with score 0.5 should be rejected")
	}
	if !v.IsValidMatch("yt", "yt", 1.0) {
		t.Error("exact short match with score 1.0 should be accepted")
	}
}

func TestIsValidMatchFirstCharDiffers(t *testing.T) {
	v := NewDefaultValidator()

	if v.IsValidMatch("betflix", "netflix", 0.65) {
		t.Error("first-char mismatch at 0.65 should be rejected")
	}
	if !v.IsValidMatch("betflix", "netflix", 0.75) {
		t.Error("first-char mismatch at 0.75 should be accepted")
	}
}

func TestIsValidMatchSubstringLeniency(t *testing.T) {
	v := NewDefaultValidator()

	if !v.IsValidMatch("netflix premium sharing", "netflix", 0.35) {
		t.Error("substring relation should accept a 0.35 score")
	}
	if v.IsValidMatch("netflix premium sharing", "netflix", 0.2) {
		t.Error("substring relation should still reject below 0.3")
	}
}

func TestIsValidMatchConfusablePairs(t *testing.T) {
	v := NewDefaultValidator()

	tests := []struct {
		name      string
		input     string
		candidate string
		score     float64
		want      bool
	}{
		{
			name:      "exact member against sibling rejected regardless of score",
			input:     "capcut",
			candidate: "canva",
			score:     0.99,
			want:      false,
		},
		{
			name:      "exact member against itself accepted",
			input:     "capcut",
			candidate: "capcut",
			score:     1.0,
			want:      true,
		},
		{
			name:      "near-member typo needs 0.8",
			input:     "capcu",
			candidate: "canva",
			score:     0.65,
			want:      false,
		},
		{
			name:      "near-member typo accepted at 0.8",
			input:     "capcu",
			candidate: "canva",
			score:     0.8,
			want:      true,
		},
		{
			name:      "unrelated input ignores the pair rule",
			input:     "canvva",
			candidate: "canva",
			score:     0.9,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.IsValidMatch(tt.input, tt.candidate, tt.score)
			if got != tt.want {
				t.Errorf("IsValidMatch(%q, %q, %v) = %v, want %v",
					tt.input, tt.candidate, tt.score, got, tt.want)
			}
		})
	}
}

func TestIsValidMatchConfusableNeverAcceptsBelowThreshold(t *testing.T) {
	v := NewDefaultValidator()

	// Property: no score below 0.8 may cross a declared pair unless
	// the input is the exact candidate label.
	for _, p := range DefaultConfusablePairs {
		for score := 0.0; score < 0.8; score += 0.1 {
			if v.IsValidMatch(p.A, p.B, score) {
				t.Errorf("pair (%s,%s) accepted at score %v", p.A, p.B, score)
			}
			if v.IsValidMatch(p.B, p.A, score) {
				t.Errorf("pair (%s,%s) accepted at score %v", p.B, p.A, score)
			}
		}
	}
}

func TestIsValidMatchPlainAccept(t *testing.T) {
	v := NewDefaultValidator()

	// Same first char, no pair, no substring: trust the raw score.
	if !v.IsValidMatch("spotify famili", "spotify family", 0.55) {
		t.Error("ordinary near-match should be accepted")
	}
}
