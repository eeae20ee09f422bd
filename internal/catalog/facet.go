package catalog

import (
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/match"
)

type facetRule struct {
	facet    core.Facet
	keywords []string
}

// Checked in priority order. Price is the default because it is by far
// the most common ask.
var facetRules = []facetRule{
	{core.FacetWarranty, []string{"garansi", "warranty", "jaminan", "bergaransi", "klaim"}},
	{core.FacetPrice, []string{"harga", "berapa", "berapaan", "biaya", "tarif", "price", "paket", "murah", "mahal", "pricelist"}},
	{core.FacetFeatures, []string{"fitur", "benefit", "keunggulan", "kelebihan", "feature", "spek", "bisa apa"}},
	{core.FacetFull, []string{"info lengkap", "full info", "detail lengkap", "semua info", "lengkap", "detail", "info"}},
}

// DetectFacet picks which aspect of an item the message asks about.
func DetectFacet(message string) core.Facet {
	msg := match.Normalize(message)
	for _, rule := range facetRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.facet
			}
		}
	}
	return core.FacetPrice
}
