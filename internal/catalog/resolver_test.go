package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
)

type memRepo struct {
	entries []core.CatalogEntry
}

func (m *memRepo) List(ctx context.Context) ([]core.CatalogEntry, error) {
	return m.entries, nil
}

func (m *memRepo) Get(ctx context.Context, name string) (core.CatalogEntry, bool, error) {
	for _, e := range m.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true, nil
		}
	}
	return core.CatalogEntry{}, false, nil
}

func (m *memRepo) Upsert(ctx context.Context, entry core.CatalogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func testRepo() *memRepo {
	return &memRepo{entries: []core.CatalogEntry{
		{Name: "netflix", SourceText: "1 Bulan: Rp 25.000\nGaransi: full\nFitur:\n- 4K Ultra HD"},
		{Name: "spotify", SourceText: "1 Bulan: Rp 15.000\nGaransi: 30 hari"},
		{Name: "canva", SourceText: "1 Bulan: Rp 10.000"},
		{Name: "capcut", SourceText: "1 Bulan: Rp 12.000"},
		{Name: "youtube premium", SourceText: "1 Bulan: Rp 20.000"},
	}}
}

func testResolver() *Resolver {
	repo := testRepo()
	return NewResolver(repo, NewRenderer(repo), match.NewDefaultValidator())
}

func TestResolveSubstringBeatsComplaintVocabulary(t *testing.T) {
	r := testResolver()

	res, ok := r.Resolve(context.Background(), "kenapa netflix mahal banget sih")
	if !ok {
		t.Fatal("expected a resolution")
	}
	if res.Name != "netflix" {
		t.Errorf("resolved %q, want netflix", res.Name)
	}
	if res.Facet != core.FacetPrice {
		t.Errorf("facet = %v, want price", res.Facet)
	}
	if !strings.Contains(res.Text, "Rp 25.000") {
		t.Errorf("price text missing from %q", res.Text)
	}
}

func TestResolveDefaultsToPriceFacet(t *testing.T) {
	r := testResolver()

	res, ok := r.Resolve(context.Background(), "netflix")
	if !ok {
		t.Fatal("expected a resolution")
	}
	if res.Facet != core.FacetPrice {
		t.Errorf("facet = %v, want price (default)", res.Facet)
	}
}

func TestResolveWarrantyFacet(t *testing.T) {
	r := testResolver()

	res, ok := r.Resolve(context.Background(), "spotify ada garansi ga")
	if !ok {
		t.Fatal("expected a resolution")
	}
	if res.Facet != core.FacetWarranty {
		t.Errorf("facet = %v, want warranty", res.Facet)
	}
	if !strings.Contains(res.Text, "30 hari") {
		t.Errorf("warranty text missing from %q", res.Text)
	}
}

func TestResolveFuzzyTypo(t *testing.T) {
	r := testResolver()

	res, ok := r.Resolve(context.Background(), "netflik")
	if !ok {
		t.Fatal("expected fuzzy resolution of netflik")
	}
	if res.Name != "netflix" {
		t.Errorf("resolved %q, want netflix", res.Name)
	}
}

func TestResolveConfusablePairRejected(t *testing.T) {
	repo := &memRepo{entries: []core.CatalogEntry{
		{Name: "canva", SourceText: "1 Bulan: Rp 10.000"},
	}}
	r := NewResolver(repo, NewRenderer(repo), match.NewDefaultValidator())

	// capcut is not in this catalog but is a declared sibling of
	// canva; an exact mention of it must not land on canva.
	if res, ok := r.Resolve(context.Background(), "capcut"); ok {
		t.Errorf("capcut resolved to %q, want no match", res.Name)
	}
}

func TestResolveTroubleLexiconSuppressed(t *testing.T) {
	r := testResolver()

	if res, ok := r.Resolve(context.Background(), "netflix login error terus ga bisa masuk"); ok {
		t.Errorf("account-trouble message resolved to %q, want no match", res.Name)
	}
}

func TestResolveTroubleWithProductIntentAllowed(t *testing.T) {
	r := testResolver()

	res, ok := r.Resolve(context.Background(), "kenapa netflix mahal padahal sering error")
	if !ok {
		t.Fatal("product-intent keyword should re-enable resolution")
	}
	if res.Name != "netflix" {
		t.Errorf("resolved %q, want netflix", res.Name)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := testResolver()

	if res, ok := r.Resolve(context.Background(), "apakah besok hujan"); ok {
		t.Errorf("unrelated message resolved to %q, want no match", res.Name)
	}
}

func TestResolveRendererMissContinues(t *testing.T) {
	// "netflix" has no notes facet text for features? It does have
	// features. Use an entry with no package lines: price render fails
	// and the resolver must fall through instead of stopping.
	repo := &memRepo{entries: []core.CatalogEntry{
		{Name: "viu", SourceText: "Garansi: 7 hari"},
	}}
	r := NewResolver(repo, NewRenderer(repo), match.NewDefaultValidator())

	if res, ok := r.Resolve(context.Background(), "viu"); ok {
		t.Errorf("price facet without packages resolved to %q, want no match", res.Name)
	}

	res, ok := r.Resolve(context.Background(), "garansi viu gimana")
	if !ok {
		t.Fatal("warranty facet should resolve")
	}
	if res.Facet != core.FacetWarranty {
		t.Errorf("facet = %v, want warranty", res.Facet)
	}
}

func TestRenderFacetUnknownItem(t *testing.T) {
	renderer := NewRenderer(testRepo())

	if _, ok := renderer.RenderFacet(context.Background(), "tidak ada", core.FacetPrice); ok {
		t.Error("unknown item should not render")
	}
}
