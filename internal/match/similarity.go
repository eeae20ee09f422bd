package match

import (
	"strings"
	"unicode"
)

// Similarity scores how alike two strings are on a 0..1 scale using a
// Levenshtein ratio over the normalized forms. Symmetric, and 1.0 for
// identical inputs.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		if na == "" {
			return 0
		}
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	ra, rb := []rune(na), []rune(nb)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}

	dist := levenshtein(ra, rb)
	return 1 - float64(dist)/float64(longest)
}

// Normalize lowercases, trims, and collapses internal whitespace so
// every matcher sees the same canonical form.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// JaccardChars computes set similarity over the letters and digits of
// both strings. Used as corroboration for weak fuzzy matches.
func JaccardChars(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for r := range setA {
		if setB[r] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			set[r] = true
		}
	}
	return set
}

// WordOverlapRatio is the fraction of candidate words that appear in
// the input, where "appear" allows either word to contain the other.
func WordOverlapRatio(candidate, input string) float64 {
	candWords := strings.Fields(Normalize(candidate))
	inputWords := strings.Fields(Normalize(input))
	if len(candWords) == 0 || len(inputWords) == 0 {
		return 0
	}

	hits := 0
	for _, cw := range candWords {
		for _, iw := range inputWords {
			if strings.Contains(iw, cw) || strings.Contains(cw, iw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(candWords))
}
