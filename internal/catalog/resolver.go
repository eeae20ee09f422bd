package catalog

import (
	"context"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/pkg/log"
)

// Fuzzy acceptance thresholds. The corroboration constants for the
// weak pass are tuning policy, not invariants.
const (
	strongFuzzyThreshold = 0.6
	weakFuzzyThreshold   = 0.5
	weakWordOverlapMin   = 0.5
	weakJaccardMin       = 0.4
)

// Account-trouble vocabulary that should not be answered with a price
// list. A message carrying only these words goes to support handling,
// not product resolution.
var troubleLexicon = []string{
	"login", "log in", "password", "sandi", "error", "gagal masuk",
	"stuck", "kena limit", "dimana pesanan", "di mana pesanan",
	"pesanan saya mana", "belum masuk", "tidak bisa masuk",
	"gak bisa masuk", "ga bisa masuk", "kereset", "logout sendiri",
}

// Product-intent vocabulary that re-enables resolution even when the
// trouble lexicon hit.
var productIntentLexicon = []string{
	"harga", "berapa", "berapaan", "info", "ready", "stok", "tersedia",
	"rekomendasi", "murah", "mahal", "beli", "order", "paket", "promo",
	"garansi", "fitur",
}

// Resolution is a successful catalog hit: which item, which facet, and
// the rendered facet text.
type Resolution struct {
	Name  string
	Facet core.Facet
	Text  string
}

// Resolver maps an arbitrary message to a catalog item and facet.
type Resolver struct {
	repo      core.CatalogRepository
	renderer  core.FacetRenderer
	validator *match.Validator
}

func NewResolver(repo core.CatalogRepository, renderer core.FacetRenderer, validator *match.Validator) *Resolver {
	return &Resolver{
		repo:      repo,
		renderer:  renderer,
		validator: validator,
	}
}

// Resolve runs the three passes in order, first success wins. A
// renderer miss (item has no content for the facet) does not stop the
// search; later passes may land on a different item.
func (r *Resolver) Resolve(ctx context.Context, message string) (Resolution, bool) {
	logger := log.FromCtx(ctx)
	msg := match.Normalize(message)
	if msg == "" {
		return Resolution{}, false
	}

	entries, err := r.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list catalog")
		return Resolution{}, false
	}
	if len(entries) == 0 {
		return Resolution{}, false
	}

	// Messages that are purely about account or access trouble are not
	// sales inquiries; "netflix login rusak" goes to support, not to
	// the price list. A product-intent word re-enables resolution.
	if r.troubleOnly(msg) {
		logger.Debug().Msg("catalog resolution suppressed by trouble lexicon")
		return Resolution{}, false
	}

	facet := DetectFacet(msg)

	// Pass 1: an explicit product mention always wins, complaint
	// vocabulary or not.
	for _, e := range entries {
		if strings.Contains(msg, match.Normalize(e.Name)) {
			if res, ok := r.render(ctx, e.Name, facet); ok {
				logger.Debug().Str("item", e.Name).Str("pass", "substring").Msg("catalog resolved")
				return res, true
			}
		}
	}

	best, bestScore := r.bestCandidate(msg, entries)

	// Pass 2: trust a strong fuzzy score on its own.
	if bestScore > strongFuzzyThreshold && r.validator.IsValidMatch(msg, best, bestScore) {
		if res, ok := r.render(ctx, best, facet); ok {
			logger.Debug().Str("item", best).Float64("score", bestScore).Str("pass", "fuzzy").Msg("catalog resolved")
			return res, true
		}
	}

	// Pass 3: a weak score needs word overlap and character overlap to
	// corroborate it.
	if bestScore > weakFuzzyThreshold && r.validator.IsValidMatch(msg, best, bestScore) {
		if match.WordOverlapRatio(best, msg) > weakWordOverlapMin &&
			match.JaccardChars(msg, best) > weakJaccardMin {
			if res, ok := r.render(ctx, best, facet); ok {
				logger.Debug().Str("item", best).Float64("score", bestScore).Str("pass", "weak").Msg("catalog resolved")
				return res, true
			}
		}
	}

	return Resolution{}, false
}

func (r *Resolver) render(ctx context.Context, name string, facet core.Facet) (Resolution, bool) {
	text, ok := r.renderer.RenderFacet(ctx, name, facet)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Name: name, Facet: facet, Text: text}, true
}

func (r *Resolver) bestCandidate(msg string, entries []core.CatalogEntry) (string, float64) {
	var best string
	var bestScore float64
	for _, e := range entries {
		if score := match.Similarity(msg, e.Name); score > bestScore {
			bestScore = score
			best = e.Name
		}
	}
	return best, bestScore
}

func (r *Resolver) troubleOnly(msg string) bool {
	trouble := false
	for _, kw := range troubleLexicon {
		if strings.Contains(msg, kw) {
			trouble = true
			break
		}
	}
	if !trouble {
		return false
	}
	for _, kw := range productIntentLexicon {
		if strings.Contains(msg, kw) {
			return false
		}
	}
	return true
}
