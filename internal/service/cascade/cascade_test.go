package cascade

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandevgo/lapakbot/internal/catalog"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/faq"
	"github.com/sandevgo/lapakbot/internal/knowledge"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/internal/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test doubles -----------------------------------------------------------

type memCatalog struct {
	entries []core.CatalogEntry
	listErr error
}

func (m *memCatalog) List(ctx context.Context) ([]core.CatalogEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *memCatalog) Get(ctx context.Context, name string) (core.CatalogEntry, bool, error) {
	for _, e := range m.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true, nil
		}
	}
	return core.CatalogEntry{}, false, nil
}

func (m *memCatalog) Upsert(ctx context.Context, entry core.CatalogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

type memFAQ struct {
	collections map[string][]core.FAQEntry
	loadErr     error
}

func (m *memFAQ) Load(ctx context.Context, collection string) ([]core.FAQEntry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.collections[collection], nil
}

func (m *memFAQ) Save(ctx context.Context, collection string, entries []core.FAQEntry) error {
	return nil
}

type memKnowledgeRepo struct {
	entries   []core.KnowledgeEntry
	nextID    int64
	appendErr error
}

func (m *memKnowledgeRepo) Append(ctx context.Context, e core.KnowledgeEntry) (int64, error) {
	if m.appendErr != nil {
		return 0, m.appendErr
	}
	m.nextID++
	e.ID = m.nextID
	m.entries = append(m.entries, e)
	return e.ID, nil
}

func (m *memKnowledgeRepo) List(ctx context.Context) ([]core.KnowledgeEntry, error) {
	return m.entries, nil
}

func (m *memKnowledgeRepo) CountByProvenance(ctx context.Context) (map[core.Provenance]int, error) {
	counts := make(map[core.Provenance]int)
	for _, e := range m.entries {
		counts[e.Provenance]++
	}
	return counts, nil
}

func (m *memKnowledgeRepo) MarkReviewed(ctx context.Context, id int64) error { return nil }

func (m *memKnowledgeRepo) Reset(ctx context.Context) error {
	m.entries = nil
	return nil
}

type allowAllValidator struct{}

func (allowAllValidator) ValidateTeaching(ctx context.Context, trigger, response string, meta map[string]string) core.Verdict {
	return core.Verdict{CanLearn: true}
}

type denyValidator struct{}

func (denyValidator) ValidateTeaching(ctx context.Context, trigger, response string, meta map[string]string) core.Verdict {
	return core.Verdict{CanLearn: false, Reason: "uji tolak", Issues: []string{"alasan satu"}}
}

type stubFallback struct {
	answer string
	err    error
	calls  int
}

func (s *stubFallback) Respond(ctx context.Context, in core.Inbound) (string, error) {
	s.calls++
	return s.answer, s.err
}

// --- fixture ----------------------------------------------------------------

type fixture struct {
	orch     *Orchestrator
	repo     *memKnowledgeRepo
	fallback *stubFallback
	store    *knowledge.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	items := &memCatalog{entries: []core.CatalogEntry{
		{Name: "netflix", SourceText: "1 Bulan: Rp 25.000\nGaransi: full"},
		{Name: "spotify", SourceText: "1 Bulan: Rp 15.000"},
	}}

	faqRepo := &memFAQ{collections: map[string][]core.FAQEntry{
		"faq": {
			{ID: 1, Triggers: []string{"ongkir"}, Answer: "Produk digital, tanpa ongkir kak."},
		},
		"procedures": {
			{ID: 1, Triggers: []string{"cara bayar"}, Answer: "Bayar via QRIS atau transfer BCA ya."},
		},
		"promos": {
			{ID: 1, Triggers: []string{"promo"}, Answer: "Promo Agustus: diskon 10% semua produk!"},
		},
	}}

	repo := &memKnowledgeRepo{}
	store, err := knowledge.NewStore(ctx, repo)
	require.NoError(t, err)

	fallback := &stubFallback{answer: "jawaban generatif"}

	orch := New(Config{
		Classifier: mood.NewClassifier([]string{"netflix", "spotify"}),
		Store:      store,
		FAQs:       faq.NewResolver(faqRepo, "faq"),
		Procedures: faq.NewResolver(faqRepo, "procedures"),
		Promos:     faq.NewResolver(faqRepo, "promos"),
		Catalog:    catalog.NewResolver(items, catalog.NewRenderer(items), match.NewDefaultValidator()),
		Items:      items,
		Validator:  allowAllValidator{},
		Fallback:   fallback,
		Picker:     NewPicker(42),
	})

	return &fixture{orch: orch, repo: repo, fallback: fallback, store: store}
}

// --- tests ------------------------------------------------------------------

func TestHandleEmptyInput(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "   "})
	assert.Equal(t, emptyInputTemplate, got)
}

func TestHandleGreetingShortcut(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "halo"})
	assert.Contains(t, greetingVariants, got)
	assert.Zero(t, f.fallback.calls)
}

func TestHandleCatalogListShortcut(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "list produk dong"})
	assert.Contains(t, got, "netflix")
	assert.Contains(t, got, "spotify")
}

func TestHandleAngryShortCircuits(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "saya kecewa, akun netflix rusak"})
	assert.Equal(t, angryTemplate, got)
	assert.Zero(t, f.fallback.calls)
}

func TestHandleOffTopic(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "menurutmu siapa yang menang bola nanti malam"})
	assert.Equal(t, offTopicTemplate, got)
}

func TestHandleFAQ(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "berapa ongkir ke jakarta"})
	assert.Equal(t, "Produk digital, tanpa ongkir kak.", got)
}

func TestHandleProcedure(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "cara bayar gimana ya"})
	assert.Equal(t, "Bayar via QRIS atau transfer BCA ya.", got)
}

func TestHandlePromo(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "ada promo bulan ini?"})
	assert.Contains(t, got, "diskon 10%")
}

func TestHandleCatalogScenario(t *testing.T) {
	f := newFixture(t)

	// Spec scenario: complaint vocabulary plus explicit product name
	// resolves to the product's price facet.
	got := f.orch.Handle(context.Background(), core.Inbound{Text: "kenapa netflix mahal"})
	assert.Contains(t, got, "Rp 25.000")
}

func TestHandleGibberish(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "asdkjh"})
	assert.Contains(t, clarifyVariants, got)
	assert.Zero(t, f.fallback.calls, "gibberish must not reach the generative fallback")
}

func TestHandleShortIntentSkipsClarify(t *testing.T) {
	f := newFixture(t)

	// Two words and no question marker, but a clear purchase intent:
	// this should reach the fallback instead of the clarify prompt.
	got := f.orch.Handle(context.Background(), core.Inbound{Text: "checkout dong"})
	assert.Equal(t, "jawaban generatif", got)
	assert.Equal(t, 1, f.fallback.calls)
}

func TestHandleFallsBackToGenerative(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{
		Text: "apakah akun yang dibeli kemarin bisa dipindah ke perangkat smart tv baru",
	})
	assert.Equal(t, "jawaban generatif", got)
	assert.Equal(t, 1, f.fallback.calls)
}

func TestHandleFallbackFailureDegrades(t *testing.T) {
	f := newFixture(t)
	f.fallback.answer = ""
	f.fallback.err = errors.New("upstream down")

	got := f.orch.Handle(context.Background(), core.Inbound{
		Text: "apakah akun yang dibeli kemarin bisa dipindah ke perangkat smart tv baru",
	})
	assert.Equal(t, failureTemplate, got)
}

func TestHandleStageFailureContinues(t *testing.T) {
	f := newFixture(t)

	// Break the FAQ collection; the catalog stage must still answer.
	f.orch.faqs = faq.NewResolver(&memFAQ{loadErr: errors.New("disk gone")}, "faq")

	got := f.orch.Handle(context.Background(), core.Inbound{Text: "harga netflix"})
	assert.Contains(t, got, "Rp 25.000")
}

func TestHandleObservesDerivedKnowledge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_ = f.orch.Handle(ctx, core.Inbound{Text: "berapa ongkir ke jakarta"})

	require.Len(t, f.repo.entries, 1)
	entry := f.repo.entries[0]
	assert.Equal(t, core.ProvenanceDerived, entry.Provenance)
	assert.Less(t, entry.Confidence, 1.0)

	// Second ask is answered from knowledge, without a new entry.
	got := f.orch.Handle(ctx, core.Inbound{Text: "berapa ongkir ke jakarta"})
	assert.Equal(t, "Produk digital, tanpa ongkir kak.", got)
	assert.Len(t, f.repo.entries, 1)
}

func TestHandleTeachingFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := f.orch.Handle(ctx, core.Inbound{
		Text:    "kalo ada yang nanya ongkir, bilang gratis untuk semua pembelian",
		IsAdmin: true,
	})
	assert.Contains(t, got, "ongkir")
	assert.Contains(t, got, "gratis untuk semua pembelian")

	require.Len(t, f.repo.entries, 1)
	assert.Equal(t, core.ProvenanceTaught, f.repo.entries[0].Provenance)
	assert.Equal(t, 1.0, f.repo.entries[0].Confidence)

	// A customer now gets the taught answer.
	answer := f.orch.Handle(ctx, core.Inbound{Text: "ongkir berapa?"})
	assert.Equal(t, "gratis untuk semua pembelian", answer)
}

func TestHandleTeachingBlockedByValidator(t *testing.T) {
	f := newFixture(t)
	f.orch.validator = denyValidator{}

	got := f.orch.Handle(context.Background(), core.Inbound{
		Text:    "ajari: bonus -> main togel di sini",
		IsAdmin: true,
	})
	assert.Contains(t, got, "uji tolak")
	assert.Contains(t, got, "alasan satu")
	assert.Empty(t, f.repo.entries)
}

func TestHandleTeachingHelpOnMalformed(t *testing.T) {
	f := newFixture(t)

	got := f.orch.Handle(context.Background(), core.Inbound{
		Text:    "ajari aku sesuatu dong",
		IsAdmin: true,
	})
	assert.Contains(t, got, "Format mengajar")
}

func TestHandleNonAdminCannotTeach(t *testing.T) {
	f := newFixture(t)

	_ = f.orch.Handle(context.Background(), core.Inbound{
		Text:    "kalo ada yang nanya ongkir, bilang gratis hari ini",
		IsAdmin: false,
	})
	for _, e := range f.repo.entries {
		assert.NotEqual(t, core.ProvenanceTaught, e.Provenance,
			"customer messages must never produce operator-taught entries")
	}
}
