package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) List(ctx context.Context) ([]core.CatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, source_text FROM catalog ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer rows.Close()

	var entries []core.CatalogEntry
	for rows.Next() {
		var e core.CatalogEntry
		if err := rows.Scan(&e.Name, &e.SourceText); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *CatalogRepo) Get(ctx context.Context, name string) (core.CatalogEntry, bool, error) {
	var e core.CatalogEntry
	err := r.db.QueryRowContext(ctx,
		`SELECT name, source_text FROM catalog WHERE name = ?`,
		strings.ToLower(strings.TrimSpace(name)),
	).Scan(&e.Name, &e.SourceText)
	if errors.Is(err, sql.ErrNoRows) {
		return core.CatalogEntry{}, false, nil
	}
	if err != nil {
		return core.CatalogEntry{}, false, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return e, true, nil
}

func (r *CatalogRepo) Upsert(ctx context.Context, entry core.CatalogEntry) error {
	name := strings.ToLower(strings.TrimSpace(entry.Name))
	if name == "" {
		return errors.New("catalog entry needs a name")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog (name, source_text) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET source_text = excluded.source_text`,
		name, entry.SourceText,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert catalog entry: %w", err)
	}
	return nil
}
