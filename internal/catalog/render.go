package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/pkg/log"
)

// Renderer implements core.FacetRenderer on top of the catalog
// repository. It is the only component that turns an entry's derived
// view back into customer-facing text.
type Renderer struct {
	repo core.CatalogRepository
}

func NewRenderer(repo core.CatalogRepository) *Renderer {
	return &Renderer{repo: repo}
}

func (r *Renderer) RenderFacet(ctx context.Context, name string, facet core.Facet) (string, bool) {
	entry, found, err := r.repo.Get(ctx, name)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("item", name).Msg("catalog lookup failed")
		return "", false
	}
	if !found {
		return "", false
	}

	view := ParseView(entry)
	title := strings.ToUpper(entry.Name)

	switch facet {
	case core.FacetPrice:
		if len(view.Packages) == 0 {
			return "", false
		}
		return fmt.Sprintf("**%s**\n%s", title, renderPackages(view.Packages)), true

	case core.FacetWarranty:
		if view.WarrantyTerm == "" {
			return "", false
		}
		if strings.EqualFold(view.WarrantyTerm, "full") {
			return fmt.Sprintf("**%s** bergaransi penuh selama masa aktif. Klaim kapan saja kalau ada kendala ya kak.", title), true
		}
		return fmt.Sprintf("Garansi **%s**: %s", title, view.WarrantyTerm), true

	case core.FacetFeatures:
		if len(view.Features) == 0 {
			return "", false
		}
		return fmt.Sprintf("Fitur **%s**:\n%s", title, renderBullets(view.Features)), true

	case core.FacetFull:
		var sb strings.Builder
		sb.WriteString("**" + title + "**\n")
		if len(view.Packages) > 0 {
			sb.WriteString(renderPackages(view.Packages) + "\n")
		}
		if view.WarrantyTerm != "" {
			sb.WriteString("Garansi: " + view.WarrantyTerm + "\n")
		}
		if len(view.Features) > 0 {
			sb.WriteString("Fitur:\n" + renderBullets(view.Features) + "\n")
		}
		if len(view.Notes) > 0 {
			sb.WriteString("Catatan:\n" + renderBullets(view.Notes) + "\n")
		}
		return strings.TrimRight(sb.String(), "\n"), true
	}

	return "", false
}

func renderPackages(pkgs []core.PackageOption) string {
	lines := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		line := fmt.Sprintf("• %s: %s", p.Duration, p.Price)
		if p.Unit != "" {
			line += "/" + p.Unit
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderBullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "• "+it)
	}
	return strings.Join(lines, "\n")
}
