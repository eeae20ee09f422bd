package mood

import (
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
)

type intentRule struct {
	category core.IntentCategory
	keywords []string
}

var defaultIntentRules = []intentRule{
	{core.IntentGreeting, []string{"halo", "hai", "hallo", "hello", "hi", "pagi", "siang", "sore", "malam", "assalamualaikum", "permisi", "gan", "min", "kak"}},
	{core.IntentOrdering, []string{"beli", "order", "pesan", "mau", "ambil", "checkout", "buy", "langganan", "subscribe", "paket"}},
	{core.IntentProblem, []string{"error", "gagal", "rusak", "tidak bisa", "gak bisa", "ga bisa", "masalah", "kendala", "login", "password", "stuck", "hilang"}},
	{core.IntentInfo, []string{"harga", "berapa", "info", "detail", "fitur", "garansi", "ready", "stok", "tersedia", "price", "berapaan", "spek"}},
	{core.IntentPayment, []string{"bayar", "transfer", "dana", "ovo", "gopay", "qris", "pembayaran", "rekening", "payment", "bca", "invoice"}},
	{core.IntentComplaint, []string{"komplain", "kecewa", "lapor", "refund", "balikin", "penipu", "complaint", "report"}},
	{core.IntentThanks, []string{"makasih", "terima kasih", "thanks", "thank you", "thx", "tq"}},
	{core.IntentGoodbye, []string{"bye", "dadah", "sampai jumpa", "goodbye", "see you", "sampai nanti"}},
}

// DetectIntent scores every category by the fraction of its keywords
// present in the message and returns the winner. Confidence blends the
// winning score with a bonus for multiple matched categories and a
// bonus when a catalog name also appears.
func (c *Classifier) DetectIntent(message string) core.Intent {
	msg := match.Normalize(message)
	if msg == "" {
		return core.Intent{Category: core.IntentUnknown, Confidence: 0}
	}

	var (
		best        core.IntentCategory = core.IntentUnknown
		bestScore   float64
		matchedCats int
	)

	for _, rule := range c.intents {
		hits := 0
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		matchedCats++
		score := float64(hits) / float64(len(rule.keywords))
		if score > bestScore {
			bestScore = score
			best = rule.category
		}
	}

	if best == core.IntentUnknown {
		return core.Intent{Category: core.IntentUnknown, Confidence: 0}
	}

	confidence := bestScore
	if matchedCats > 1 {
		confidence += 0.1 * float64(matchedCats-1)
	}
	for _, name := range c.catalog {
		if strings.Contains(msg, match.Normalize(name)) {
			confidence += 0.2
			break
		}
	}
	if confidence > 1 {
		confidence = 1
	}

	return core.Intent{Category: best, Confidence: confidence}
}
