package mood

import (
	"regexp"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
)

// moodRule binds one label to its keyword list. Rules are evaluated in
// order, first hit wins.
type moodRule struct {
	label    core.MoodLabel
	keywords []string
}

// Priority: angry > positive > offtopic. Anger must never be shadowed
// by a polite opener in the same message.
var defaultMoodRules = []moodRule{
	{
		label: core.MoodAngry,
		keywords: []string{
			"kecewa", "marah", "kesal", "parah", "penipu", "nipu", "tipu",
			"lambat", "lelet", "gak bisa", "ga bisa", "tidak bisa", "rusak",
			"jelek", "refund", "uang kembali", "komplain", "complaint",
			"angry", "scam", "broken", "terrible",
		},
	},
	{
		label: core.MoodPositive,
		keywords: []string{
			"makasih", "terima kasih", "thanks", "thank you", "mantap",
			"keren", "bagus", "oke banget", "puas", "recommended", "sukses",
			"lancar", "great", "awesome",
		},
	},
	{
		label: core.MoodOffTopic,
		keywords: []string{
			"cuaca", "bola", "politik", "gosip", "pacar", "jodoh", "pinjam",
			"pinjol", "togel", "judi", "crypto", "saham",
		},
	},
}

var (
	questionMarkers = regexp.MustCompile(`\b(kenapa|kok|kenapa sih|gimana|bagaimana|why|how)\b`)
	troubleMarkers  = regexp.MustCompile(`\b(error|gagal|ga jalan|gak jalan|tidak jalan|bermasalah|masalah|trouble|problem|stuck)\b`)
)

// Classifier maps a message onto a mood label and an intent category.
type Classifier struct {
	moodRules []moodRule
	intents   []intentRule
	catalog   []string
}

// NewClassifier builds a classifier with the default keyword tables.
// catalogNames feed the product-mention bonus in intent confidence.
func NewClassifier(catalogNames []string) *Classifier {
	return &Classifier{
		moodRules: defaultMoodRules,
		intents:   defaultIntentRules,
		catalog:   catalogNames,
	}
}

// Detect returns the first mood whose keyword list hits, falling back
// to a compound question+trouble probe, then neutral.
func (c *Classifier) Detect(message string) core.MoodLabel {
	msg := match.Normalize(message)
	if msg == "" {
		return core.MoodNeutral
	}

	for _, rule := range c.moodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.label
			}
		}
	}

	// A question about something going wrong reads as frustration even
	// without an explicit anger word.
	if questionMarkers.MatchString(msg) && troubleMarkers.MatchString(msg) {
		return core.MoodAngry
	}

	return core.MoodNeutral
}
