package catalog

import (
	"regexp"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
)

// Source text is the single source of truth for an item. The shop
// owner writes it as a free-form price list; the structured view is
// re-derived on every read and never persisted.
//
// Recognized shapes, one per line:
//
//	<duration>: <price>           e.g. "1 Bulan: Rp 25.000"
//	Garansi: <term>               warranty term, "full" allowed
//	Fitur:  followed by "- ..."   feature bullets
//	Catatan: followed by "- ..."  note bullets

var packageLine = regexp.MustCompile(`(?i)^\s*(\d+\s*(?:hari|minggu|bulan|tahun|day|week|month|year)s?)\s*[:=\-]\s*(rp[\s.]?[\d.,]+k?|[\d.,]+k?)\s*(?:/\s*(\S+))?\s*$`)

var warrantyLine = regexp.MustCompile(`(?i)^\s*(?:garansi|warranty|jaminan)\s*[:=\-]\s*(.+)$`)

// ParseView derives the structured projection of an entry's source text.
func ParseView(entry core.CatalogEntry) core.CatalogView {
	var view core.CatalogView

	section := ""
	for _, raw := range strings.Split(entry.SourceText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := packageLine.FindStringSubmatch(line); m != nil {
			view.Packages = append(view.Packages, core.PackageOption{
				Duration: strings.TrimSpace(m[1]),
				Price:    strings.TrimSpace(m[2]),
				Unit:     strings.TrimSpace(m[3]),
			})
			section = ""
			continue
		}

		if m := warrantyLine.FindStringSubmatch(line); m != nil {
			view.WarrantyTerm = strings.TrimSpace(m[1])
			section = ""
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "fitur") || strings.HasPrefix(lower, "feature") || strings.HasPrefix(lower, "benefit"):
			section = "features"
			continue
		case strings.HasPrefix(lower, "catatan") || strings.HasPrefix(lower, "note"):
			section = "notes"
			continue
		}

		if bullet, ok := strings.CutPrefix(line, "-"); ok {
			item := strings.TrimSpace(bullet)
			switch section {
			case "features":
				view.Features = append(view.Features, item)
			case "notes":
				view.Notes = append(view.Notes, item)
			}
		}
	}

	return view
}
