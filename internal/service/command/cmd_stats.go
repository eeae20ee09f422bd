package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/knowledge"
)

var provenanceLabels = map[core.Provenance]string{
	core.ProvenanceTaught:  "diajarkan operator",
	core.ProvenanceDerived: "dipelajari sendiri",
	core.ProvenancePending: "menunggu review",
}

// StatsCommand summarizes what the bot has learned so far.
type StatsCommand struct {
	store   *knowledge.Store
	catalog core.CatalogRepository
}

func NewStatsCommand(store *knowledge.Store, catalog core.CatalogRepository) *StatsCommand {
	return &StatsCommand{store: store, catalog: catalog}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Lihat statistik pengetahuan bot"
}

func (c *StatsCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("📊 Statistik bot\n\n")
	sb.WriteString(fmt.Sprintf("Jawaban tersimpan: %d\n", c.store.Count()))
	for prov, label := range provenanceLabels {
		if n := stats[prov]; n > 0 {
			sb.WriteString(fmt.Sprintf("• %s: %d\n", label, n))
		}
	}

	if c.catalog != nil {
		entries, err := c.catalog.List(ctx)
		if err == nil {
			sb.WriteString(fmt.Sprintf("Produk di katalog: %d\n", len(entries)))
		}
	}
	return sb.String(), nil
}
