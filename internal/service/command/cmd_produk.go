package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
)

// ProdukCommand shows the catalog: the full list without arguments,
// one item's complete card with a name argument.
type ProdukCommand struct {
	repo     core.CatalogRepository
	renderer core.FacetRenderer
}

func NewProdukCommand(repo core.CatalogRepository, renderer core.FacetRenderer) *ProdukCommand {
	return &ProdukCommand{repo: repo, renderer: renderer}
}

func (c *ProdukCommand) Name() string {
	return "produk"
}

func (c *ProdukCommand) Description() string {
	return "Lihat daftar produk atau detail satu produk"
}

func (c *ProdukCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	if len(args) == 0 {
		entries, err := c.repo.List(ctx)
		if err != nil {
			return "", err
		}
		if len(entries) == 0 {
			return "Katalog masih kosong. Tambah produk dengan /tambahproduk.", nil
		}
		var sb strings.Builder
		sb.WriteString("Produk di katalog:\n")
		for _, e := range entries {
			sb.WriteString("• " + e.Name + "\n")
		}
		return sb.String(), nil
	}

	name := strings.ToLower(strings.Join(args, " "))
	if text, ok := c.renderer.RenderFacet(ctx, name, core.FacetFull); ok {
		return text, nil
	}
	return fmt.Sprintf("Produk %q tidak ada di katalog.", name), nil
}
