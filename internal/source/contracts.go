package source

import (
	"context"

	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// PageSource yields the per-page text and grid produced by the external PDF
// layout extractor. Implementations own whatever I/O that takes; the parsing
// core never touches the boundary itself.
type PageSource interface {
	Pages(ctx context.Context) ([]entity.RawPage, error)
}

// TableSettings mirrors the table-detection options handed to the external
// extractor. Tolerances are in layout units.
type TableSettings struct {
	VerticalStrategy   string `json:"vertical_strategy"`
	HorizontalStrategy string `json:"horizontal_strategy"`
	SnapTolerance      int    `json:"snap_tolerance"`
	JoinTolerance      int    `json:"join_tolerance"`
}

// DefaultTableSettings are the settings the known order layout was tuned
// against: column boundaries from ruled lines, row boundaries from text.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		VerticalStrategy:   "lines",
		HorizontalStrategy: "text",
		SnapTolerance:      3,
		JoinTolerance:      3,
	}
}
