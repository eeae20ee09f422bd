package core

import "context"

// KnowledgeRepository persists taught pairs. Append is the only write
// path besides Reset; implementations must never update or delete
// individual entries.
type KnowledgeRepository interface {
	Append(ctx context.Context, entry KnowledgeEntry) (int64, error)
	List(ctx context.Context) ([]KnowledgeEntry, error)
	CountByProvenance(ctx context.Context) (map[Provenance]int, error)
	MarkReviewed(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
}

// CatalogRepository stores sellable items keyed by canonical name
// (unique, case-insensitive).
type CatalogRepository interface {
	List(ctx context.Context) ([]CatalogEntry, error)
	Get(ctx context.Context, name string) (CatalogEntry, bool, error)
	Upsert(ctx context.Context, entry CatalogEntry) error
}

// FAQRepository loads a named curated collection (faq, procedures,
// promos). Load returns an empty slice, never nil, when the
// collection is missing or empty.
type FAQRepository interface {
	Load(ctx context.Context, collection string) ([]FAQEntry, error)
	Save(ctx context.Context, collection string, entries []FAQEntry) error
}
