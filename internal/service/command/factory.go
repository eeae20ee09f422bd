package command

import (
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/knowledge"
	"github.com/sandevgo/lapakbot/internal/service/session"
)

func NewCommands(
	store *knowledge.Store,
	catalog core.CatalogRepository,
	renderer core.FacetRenderer,
	sessions *session.Store,
) []core.Command {
	return []core.Command{
		NewAjarCommand(),
		NewResetCommand(store, sessions),
		NewProdukCommand(catalog, renderer),
		NewTambahProdukCommand(catalog, sessions),
		NewStatsCommand(store, catalog),
		NewReviewCommand(store),
	}
}
