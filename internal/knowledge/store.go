package knowledge

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/pkg/log"
)

const similarityThreshold = 0.6

// Store is the append-only knowledge base. Entries live in the
// repository for auditing; the in-memory pattern list and TF index are
// rebuilt from it at startup and extended on Learn. Reset is the only
// destructive operation and must be an explicit operator action.
type Store struct {
	mu       sync.RWMutex
	repo     core.KnowledgeRepository
	patterns []core.Pattern
	index    []docVector
}

type docVector struct {
	terms    map[string]float64
	response string
}

func NewStore(ctx context.Context, repo core.KnowledgeRepository) (*Store, error) {
	s := &Store{repo: repo}

	entries, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge entries: %w", err)
	}
	for _, e := range entries {
		s.indexEntry(e)
	}

	log.FromCtx(ctx).Info().Int("entries", len(entries)).Msg("knowledge base loaded")
	return s, nil
}

// Learn appends one entry and indexes its trigger. Prior entries are
// never touched.
func (s *Store) Learn(ctx context.Context, trigger, response string, provenance core.Provenance, confidence float64) (core.KnowledgeEntry, error) {
	trigger = strings.TrimSpace(trigger)
	response = strings.TrimSpace(response)
	if trigger == "" || response == "" {
		return core.KnowledgeEntry{}, fmt.Errorf("trigger and response must be non-empty")
	}

	entry := core.KnowledgeEntry{
		Trigger:    trigger,
		Response:   response,
		Provenance: provenance,
		Confidence: confidence,
		CreatedAt:  time.Now(),
	}

	id, err := s.repo.Append(ctx, entry)
	if err != nil {
		return core.KnowledgeEntry{}, fmt.Errorf("failed to persist knowledge entry: %w", err)
	}
	entry.ID = id

	s.mu.Lock()
	s.indexEntry(entry)
	s.mu.Unlock()

	log.FromCtx(ctx).Info().
		Int64("id", id).
		Str("provenance", string(provenance)).
		Msg("knowledge entry learned")
	return entry, nil
}

// Lookup answers a message from the knowledge base: exact/substring
// against stored triggers first, then TF document similarity.
func (s *Store) Lookup(ctx context.Context, message string) (string, bool) {
	msg := match.Normalize(message)
	if msg == "" {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patterns {
		for _, trig := range p.Triggers {
			if strings.Contains(msg, trig) || strings.Contains(trig, msg) {
				return p.Response, true
			}
		}
	}

	query := termFrequency(msg)
	var (
		bestScore float64
		bestResp  string
	)
	for _, doc := range s.index {
		if score := cosine(query, doc.terms); score > bestScore {
			bestScore = score
			bestResp = doc.response
		}
	}
	if bestScore > similarityThreshold {
		log.FromCtx(ctx).Debug().Float64("score", bestScore).Msg("knowledge similarity hit")
		return bestResp, true
	}
	return "", false
}

// Count reports how many patterns are indexed.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patterns)
}

// Stats reports entry counts grouped by provenance.
func (s *Store) Stats(ctx context.Context) (map[core.Provenance]int, error) {
	return s.repo.CountByProvenance(ctx)
}

// Unreviewed lists derived entries awaiting an operator's look.
func (s *Store) Unreviewed(ctx context.Context) ([]core.KnowledgeEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	var out []core.KnowledgeEntry
	for _, e := range entries {
		if !e.Reviewed && e.Provenance != core.ProvenanceTaught {
			out = append(out, e)
		}
	}
	return out, nil
}

// MarkReviewed flags one entry as operator-approved.
func (s *Store) MarkReviewed(ctx context.Context, id int64) error {
	return s.repo.MarkReviewed(ctx, id)
}

// Reset wipes the whole knowledge base. Explicit operator action only.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset knowledge base: %w", err)
	}

	s.mu.Lock()
	s.patterns = nil
	s.index = nil
	s.mu.Unlock()

	log.FromCtx(ctx).Warn().Msg("knowledge base reset")
	return nil
}

// indexEntry derives the pattern and TF document for one entry.
// Callers hold the write lock (or are still single-threaded in New).
func (s *Store) indexEntry(e core.KnowledgeEntry) {
	trig := match.Normalize(e.Trigger)
	if trig == "" {
		return
	}

	s.patterns = append(s.patterns, core.Pattern{
		ID:       e.ID,
		Triggers: []string{trig},
		Response: e.Response,
		Tags:     deriveTags(trig),
	})
	s.index = append(s.index, docVector{
		terms:    termFrequency(trig),
		response: e.Response,
	})
}

var tagLexicon = map[string][]string{
	"price":    {"harga", "berapa", "biaya", "murah", "mahal"},
	"payment":  {"bayar", "transfer", "qris", "dana", "ovo"},
	"shipping": {"ongkir", "kirim", "pengiriman"},
	"warranty": {"garansi", "klaim", "jaminan"},
}

func deriveTags(trigger string) []string {
	var tags []string
	for tag, kws := range tagLexicon {
		for _, kw := range kws {
			if strings.Contains(trigger, kw) {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}

func termFrequency(text string) map[string]float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(words))
	for _, w := range words {
		tf[w]++
	}
	for w := range tf {
		tf[w] /= float64(len(words))
	}
	return tf
}

func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, na, nb float64
	for t, v := range a {
		na += v * v
		if bv, ok := b[t]; ok {
			dot += v * bv
		}
	}
	for _, v := range b {
		nb += v * v
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
