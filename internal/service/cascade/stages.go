package cascade

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
)

var greetingExact = []string{
	"halo", "hai", "hallo", "hello", "hi", "p", "pagi", "selamat pagi",
	"siang", "selamat siang", "sore", "selamat sore", "malam",
	"selamat malam", "assalamualaikum", "permisi", "misi",
}

var thanksMarkers = []string{"makasih", "terima kasih", "thanks", "thank you", "thx", "tq", "tengkyu"}

var listRequests = []string{
	"list produk", "daftar produk", "produk apa aja", "jual apa",
	"pricelist", "price list", "list harga", "ada produk apa", "katalog",
}

var promoMarkers = []string{"promo", "diskon", "voucher", "potongan", "cashback"}

// Stage 0: unambiguous exact/substring shortcuts. No fuzzy logic here;
// these must never be shadowed by noisier heuristics.
func (o *Orchestrator) resolveShortcuts(ctx context.Context, in core.Inbound) (core.Result, error) {
	msg := match.Normalize(in.Text)

	for _, g := range greetingExact {
		if msg == g {
			return core.Match(o.picker.Pick(greetingVariants)), nil
		}
	}

	for _, t := range thanksMarkers {
		if strings.Contains(msg, t) {
			return core.Match(o.picker.Pick(thanksVariants)), nil
		}
	}

	for _, l := range listRequests {
		if strings.Contains(msg, l) {
			return o.renderCatalogList(ctx)
		}
	}

	return core.NoMatch(), nil
}

// Stage 1: mood templates. Angry and off-topic short-circuit; other
// moods flow on.
func (o *Orchestrator) resolveMood(ctx context.Context, in core.Inbound) (core.Result, error) {
	switch o.classifier.Detect(in.Text) {
	case core.MoodAngry:
		return core.Match(angryTemplate), nil
	case core.MoodOffTopic:
		return core.Match(offTopicTemplate), nil
	}
	return core.NoMatch(), nil
}

// Stage 2: optional small-talk collaborator.
func (o *Orchestrator) resolveNatural(ctx context.Context, in core.Inbound) (core.Result, error) {
	if o.natural == nil {
		return core.NoMatch(), nil
	}
	if answer, ok := o.natural.Read(ctx, in.Text); ok {
		return core.Match(answer), nil
	}
	return core.NoMatch(), nil
}

// Stage 3: taught knowledge.
func (o *Orchestrator) resolveKnowledge(ctx context.Context, in core.Inbound) (core.Result, error) {
	if o.store == nil {
		return core.NoMatch(), nil
	}
	if answer, ok := o.store.Lookup(ctx, in.Text); ok {
		return core.Match(answer), nil
	}
	return core.NoMatch(), nil
}

// Stages 4-5: curated collections.
func (o *Orchestrator) resolveFAQ(ctx context.Context, in core.Inbound) (core.Result, error) {
	if o.faqs == nil {
		return core.NoMatch(), nil
	}
	return resolveCollection(ctx, o.faqs, in)
}

func (o *Orchestrator) resolveProcedure(ctx context.Context, in core.Inbound) (core.Result, error) {
	if o.procedures == nil {
		return core.NoMatch(), nil
	}
	return resolveCollection(ctx, o.procedures, in)
}

// Stage 6: promo lookup, only when the message mentions promotions.
func (o *Orchestrator) resolvePromo(ctx context.Context, in core.Inbound) (core.Result, error) {
	msg := match.Normalize(in.Text)
	mentioned := false
	for _, kw := range promoMarkers {
		if strings.Contains(msg, kw) {
			mentioned = true
			break
		}
	}
	if !mentioned || o.promos == nil {
		return core.NoMatch(), nil
	}
	return resolveCollection(ctx, o.promos, in)
}

// Stage 7: catalog resolution.
func (o *Orchestrator) resolveCatalog(ctx context.Context, in core.Inbound) (core.Result, error) {
	if o.catalog == nil {
		return core.NoMatch(), nil
	}
	if res, ok := o.catalog.Resolve(ctx, in.Text); ok {
		return core.Match(res.Text), nil
	}
	return core.NoMatch(), nil
}

// Stage 8: gibberish/ambiguity guard. Very short or letterless input
// gets a clarification prompt instead of burning a generative call.
func (o *Orchestrator) resolveGibberish(ctx context.Context, in core.Inbound) (core.Result, error) {
	msg := match.Normalize(in.Text)

	letters := 0
	for _, r := range msg {
		if unicode.IsLetter(r) {
			letters++
		}
	}

	if letters == 0 || len([]rune(msg)) < 3 {
		return core.Match(o.picker.Pick(clarifyVariants)), nil
	}

	if len(strings.Fields(msg)) <= 2 && !hasNeedKeyword(msg) {
		// A short message with a recognizable intent ("mau order") is
		// not gibberish; let it reach the fallback.
		if intent := o.classifier.DetectIntent(in.Text); intent.Category != core.IntentUnknown && intent.Confidence >= 0.1 {
			return core.NoMatch(), nil
		}
		return core.Match(o.picker.Pick(clarifyVariants)), nil
	}

	return core.NoMatch(), nil
}

var needKeywords = []string{
	"apa", "gimana", "bagaimana", "berapa", "kenapa", "kapan", "dimana",
	"di mana", "bisa", "mau", "cara", "info", "harga", "beli", "order",
	"bayar", "ready", "stok", "?",
}

func hasNeedKeyword(msg string) bool {
	for _, kw := range needKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func resolveCollection(ctx context.Context, r interface {
	Resolve(ctx context.Context, message string) (string, bool)
}, in core.Inbound) (core.Result, error) {
	if answer, ok := r.Resolve(ctx, in.Text); ok {
		return core.Match(answer), nil
	}
	return core.NoMatch(), nil
}

func (o *Orchestrator) renderCatalogList(ctx context.Context) (core.Result, error) {
	if o.items == nil {
		return core.NoMatch(), nil
	}
	entries, err := o.items.List(ctx)
	if err != nil {
		return core.NoMatch(), fmt.Errorf("failed to list catalog: %w", err)
	}
	if len(entries) == 0 {
		return core.NoMatch(), nil
	}

	var sb strings.Builder
	sb.WriteString(catalogListHeader + "\n")
	for _, e := range entries {
		sb.WriteString("• " + e.Name + "\n")
	}
	sb.WriteString("\nKetik nama produknya buat cek harga ya kak!")
	return core.Match(sb.String()), nil
}
