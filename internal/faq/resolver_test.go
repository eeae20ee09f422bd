package faq

import (
	"context"
	"testing"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/stretchr/testify/assert"
)

type memRepo struct {
	collections map[string][]core.FAQEntry
	loadErr     error
}

func (m *memRepo) Load(ctx context.Context, collection string) ([]core.FAQEntry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	entries := m.collections[collection]
	if entries == nil {
		entries = []core.FAQEntry{}
	}
	return entries, nil
}

func (m *memRepo) Save(ctx context.Context, collection string, entries []core.FAQEntry) error {
	if m.collections == nil {
		m.collections = make(map[string][]core.FAQEntry)
	}
	m.collections[collection] = entries
	return nil
}

func testEntries() []core.FAQEntry {
	return []core.FAQEntry{
		{ID: 1, Triggers: []string{"ongkir", "ongkos kirim"}, Answer: "Semua produk digital, tanpa ongkir ya kak."},
		{ID: 2, Triggers: []string{"cara bayar", "pembayaran"}, Answer: "Pembayaran via QRIS, DANA, atau transfer BCA."},
		{ID: 3, Triggers: []string{"jam buka"}, Answer: "Kami online setiap hari jam 08.00-22.00 WIB."},
	}
}

func TestResolveSubstringAuthoritative(t *testing.T) {
	repo := &memRepo{collections: map[string][]core.FAQEntry{"faq": testEntries()}}
	r := NewResolver(repo, "faq")

	answer, ok := r.Resolve(context.Background(), "berapa ongkir ke bandung?")
	assert.True(t, ok)
	assert.Contains(t, answer, "tanpa ongkir")
}

func TestResolveInputInsideKeyword(t *testing.T) {
	repo := &memRepo{collections: map[string][]core.FAQEntry{"faq": testEntries()}}
	r := NewResolver(repo, "faq")

	// Input is a substring of the trigger "ongkos kirim".
	answer, ok := r.Resolve(context.Background(), "ongkos")
	assert.True(t, ok)
	assert.Contains(t, answer, "tanpa ongkir")
}

func TestResolveFuzzyAboveThreshold(t *testing.T) {
	repo := &memRepo{collections: map[string][]core.FAQEntry{"faq": testEntries()}}
	r := NewResolver(repo, "faq")

	answer, ok := r.Resolve(context.Background(), "jam bukaa")
	assert.True(t, ok)
	assert.Contains(t, answer, "online setiap hari")
}

func TestResolveBelowThreshold(t *testing.T) {
	repo := &memRepo{collections: map[string][]core.FAQEntry{"faq": testEntries()}}
	r := NewResolver(repo, "faq")

	_, ok := r.Resolve(context.Background(), "apakah kalian jual pulsa")
	assert.False(t, ok)
}

func TestRankSkipsMalformedEntries(t *testing.T) {
	entries := []core.FAQEntry{
		{ID: 1, Triggers: nil, Answer: "tanpa trigger"},
		{ID: 2, Triggers: []string{"cara bayar"}, Answer: ""},
		{ID: 3, Triggers: []string{"cara bayar"}, Answer: "Pembayaran via QRIS."},
	}

	answer, ok := Rank(context.Background(), "cara bayar gimana", entries)
	assert.True(t, ok)
	assert.Equal(t, "Pembayaran via QRIS.", answer)
}

func TestResolveEmptyCollection(t *testing.T) {
	repo := &memRepo{}
	r := NewResolver(repo, "faq")

	_, ok := r.Resolve(context.Background(), "ongkir")
	assert.False(t, ok)
}

func TestResolveRepoErrorDegrades(t *testing.T) {
	repo := &memRepo{loadErr: assert.AnError}
	r := NewResolver(repo, "faq")

	_, ok := r.Resolve(context.Background(), "ongkir")
	assert.False(t, ok)
}

func TestNormalizeTriggers(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "single string", raw: "ongkir", want: []string{"ongkir"}},
		{name: "empty string", raw: "  ", want: nil},
		{name: "string list", raw: []string{"a", "", "b"}, want: []string{"a", "b"}},
		{name: "any list", raw: []any{"a", 42, "b"}, want: []string{"a", "b"}},
		{name: "unsupported shape", raw: 42, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTriggers(tt.raw))
		})
	}
}
