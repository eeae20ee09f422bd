package faq

import (
	"context"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/pkg/log"
)

const (
	acceptThreshold = 0.6
	noiseFloor      = 0.1
)

// Resolver ranks a message against a curated collection (FAQ,
// procedures, promos). A substring relation between input and a
// trigger keyword is authoritative and short-circuits ranking.
type Resolver struct {
	repo       core.FAQRepository
	collection string
}

func NewResolver(repo core.FAQRepository, collection string) *Resolver {
	return &Resolver{repo: repo, collection: collection}
}

func (r *Resolver) Collection() string { return r.collection }

// Resolve returns the best matching entry's answer, if any.
func (r *Resolver) Resolve(ctx context.Context, message string) (string, bool) {
	logger := log.FromCtx(ctx)
	msg := match.Normalize(message)
	if msg == "" {
		return "", false
	}

	entries, err := r.repo.Load(ctx, r.collection)
	if err != nil {
		logger.Error().Err(err).Str("collection", r.collection).Msg("failed to load collection")
		return "", false
	}

	answer, ok := Rank(ctx, msg, entries)
	if ok {
		logger.Debug().Str("collection", r.collection).Msg("curated entry matched")
	}
	return answer, ok
}

// Rank scans entries against an already-normalized message. Malformed
// entries (no triggers, no answer) are skipped, never fatal.
func Rank(ctx context.Context, msg string, entries []core.FAQEntry) (string, bool) {
	var (
		bestScore  float64
		bestAnswer string
	)

	for _, e := range entries {
		if e.Answer == "" || len(e.Triggers) == 0 {
			log.FromCtx(ctx).Warn().Int64("id", e.ID).Msg("skipping malformed curated entry")
			continue
		}

		for _, raw := range e.Triggers {
			kw := match.Normalize(raw)
			if kw == "" {
				continue
			}

			if strings.Contains(msg, kw) || strings.Contains(kw, msg) {
				return e.Answer, true
			}

			if score := match.Similarity(msg, kw); score > noiseFloor && score > bestScore {
				bestScore = score
				bestAnswer = e.Answer
			}
		}
	}

	if bestScore > acceptThreshold {
		return bestAnswer, true
	}
	return "", false
}

// NormalizeTriggers converts the string-or-list trigger shapes found
// in raw curated data into the canonical always-a-list form. All
// matching logic downstream assumes this has run.
func NormalizeTriggers(raw any) []string {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
