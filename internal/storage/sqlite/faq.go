package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/lapakbot/internal/core"
)

// CuratedRepo stores the hand-written collections (faq, procedures,
// promos). Triggers are kept as a JSON array so an entry can carry
// several phrasings.
type CuratedRepo struct {
	db *sql.DB
}

func NewCuratedRepo(db *sql.DB) *CuratedRepo {
	return &CuratedRepo{db: db}
}

func (r *CuratedRepo) Load(ctx context.Context, collection string) ([]core.FAQEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, triggers, answer FROM curated WHERE collection = ? ORDER BY id ASC`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", collection, err)
	}
	defer rows.Close()

	entries := []core.FAQEntry{}
	for rows.Next() {
		var (
			e   core.FAQEntry
			raw string
		)
		if err := rows.Scan(&e.ID, &raw, &e.Answer); err != nil {
			return nil, err
		}
		// Tolerate hand-edited rows where triggers is a bare string.
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			list = []string{raw}
		}
		e.Triggers = list
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *CuratedRepo) Save(ctx context.Context, collection string, entries []core.FAQEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM curated WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("failed to clear collection %q: %w", collection, err)
	}

	for _, e := range entries {
		triggers, err := json.Marshal(e.Triggers)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO curated (collection, triggers, answer) VALUES (?, ?, ?)`,
			collection, string(triggers), e.Answer,
		); err != nil {
			return fmt.Errorf("failed to save collection %q: %w", collection, err)
		}
	}

	return tx.Commit()
}
