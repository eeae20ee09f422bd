package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/lapakbot/internal/core"
)

// KnowledgeRepo persists the append-only learning ledger. Rows are
// never updated in place; re-teaching the same trigger appends a new
// row and readers take the most recent one.
type KnowledgeRepo struct {
	db *sql.DB
}

func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

func (r *KnowledgeRepo) Append(ctx context.Context, e core.KnowledgeEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO knowledge ("trigger", response, provenance, confidence, reviewed) VALUES (?, ?, ?, ?, ?)`,
		e.Trigger, e.Response, string(e.Provenance), e.Confidence, e.Reviewed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append knowledge entry: %w", err)
	}
	return res.LastInsertId()
}

func (r *KnowledgeRepo) List(ctx context.Context) ([]core.KnowledgeEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, "trigger", response, provenance, confidence, reviewed, created_at
		 FROM knowledge ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge: %w", err)
	}
	defer rows.Close()

	var entries []core.KnowledgeEntry
	for rows.Next() {
		var (
			e          core.KnowledgeEntry
			provenance string
		)
		if err := rows.Scan(&e.ID, &e.Trigger, &e.Response, &provenance, &e.Confidence, &e.Reviewed, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Provenance = core.Provenance(provenance)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *KnowledgeRepo) CountByProvenance(ctx context.Context) (map[core.Provenance]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provenance, COUNT(*) FROM knowledge GROUP BY provenance`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count knowledge: %w", err)
	}
	defer rows.Close()

	counts := make(map[core.Provenance]int)
	for rows.Next() {
		var (
			provenance string
			n          int
		)
		if err := rows.Scan(&provenance, &n); err != nil {
			return nil, err
		}
		counts[core.Provenance(provenance)] = n
	}
	return counts, rows.Err()
}

func (r *KnowledgeRepo) MarkReviewed(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE knowledge SET reviewed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark entry reviewed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("knowledge entry %d not found", id)
	}
	return nil
}

// Reset wipes the ledger. Only the explicit operator command reaches
// this; nothing in the answer path deletes rows.
func (r *KnowledgeRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM knowledge`); err != nil {
		return fmt.Errorf("failed to reset knowledge: %w", err)
	}
	return nil
}
