package match

import "strings"

// ConfusablePair names two catalog items known to collide under fuzzy
// scoring alone (near-homonym brand names). The table is policy, not
// an invariant: tune it per catalog.
type ConfusablePair struct {
	A string
	B string
}

// DefaultConfusablePairs covers the brand names in the starter catalog
// that score deceptively close to each other.
var DefaultConfusablePairs = []ConfusablePair{
	{A: "canva", B: "capcut"},
	{A: "vidio", B: "video"},
	{A: "viu", B: "vio"},
	{A: "iqiyi", B: "iflix"},
}

// Thresholds applied by the validator, exported so tests and callers
// can reference them instead of re-declaring magic numbers.
const (
	shortInputThreshold  = 0.8
	firstCharThreshold   = 0.7
	confusableThreshold  = 0.8
	substringThreshold   = 0.3
	confusableEchoBottom = 0.5
)

// Validator gates raw similarity scores with heuristics that know
// about short inputs, first-character drift, and confusable brand
// names. A zero-value Validator carries no confusable table.
type Validator struct {
	pairs []ConfusablePair
}

func NewValidator(pairs []ConfusablePair) *Validator {
	return &Validator{pairs: pairs}
}

func NewDefaultValidator() *Validator {
	return NewValidator(DefaultConfusablePairs)
}

// IsValidMatch decides whether a raw similarity score between an input
// and a candidate label should be trusted.
func (v *Validator) IsValidMatch(input, candidate string, score float64) bool {
	in := Normalize(input)
	cand := Normalize(candidate)

	// Confusable pairs override every weaker rule below.
	if decided, ok := v.checkConfusable(in, cand, score); decided {
		return ok
	}

	if len([]rune(in)) <= 2 {
		return score >= shortInputThreshold
	}

	if firstRune(in) != firstRune(cand) {
		return score >= firstCharThreshold
	}

	if strings.Contains(in, cand) || strings.Contains(cand, in) {
		return score >= substringThreshold
	}

	return true
}

// checkConfusable returns (decided, accepted). The pair rule engages
// when the candidate is a member of a pair and the input either names
// a member exactly or closely resembles the sibling member.
func (v *Validator) checkConfusable(in, cand string, score float64) (bool, bool) {
	for _, p := range v.pairs {
		a, b := Normalize(p.A), Normalize(p.B)

		var other string
		switch cand {
		case a:
			other = b
		case b:
			other = a
		default:
			continue
		}

		if in == a || in == b {
			// The user literally named a confusable item: only the
			// exact label may match it.
			return true, in == cand
		}

		if Similarity(in, other) >= confusableEchoBottom {
			return true, score >= confusableThreshold
		}
	}
	return false, false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
