package extract

import (
	"strings"

	"github.com/gilerojas/orden-compra-app/constants"
	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// PageResult is one page's contribution to the document.
type PageResult struct {
	Records []entity.OrderRecord
	Status  constants.TableStatus
}

// ParsePage runs the three resolvers on one page and broadcasts the page's
// metadata and totals onto every parsed item. The resolvers share nothing;
// a page whose table yields no items simply contributes no records.
func (p *Parser) ParsePage(page entity.RawPage, pageNum int) PageResult {
	if strings.TrimSpace(page.Text) == "" {
		p.logger.Warn("extract.page.no_text", "page", pageNum)
		return PageResult{Status: constants.TableNoItems}
	}

	md := p.ResolveMetadata(page)
	totals := p.ResolveTotals(page.Text)
	res := p.ParseItems(page.Grid, pageNum)
	if len(res.Items) == 0 {
		return PageResult{Status: res.Status}
	}

	records := make([]entity.OrderRecord, 0, len(res.Items))
	for _, it := range res.Items {
		records = append(records, entity.OrderRecord{
			Metadata: md,
			Item:     it,
			Totals:   totals,
		})
	}
	return PageResult{Records: records, Status: res.Status}
}
