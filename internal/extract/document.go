package extract

import (
	"github.com/google/uuid"

	"github.com/gilerojas/orden-compra-app/internal/common"
	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// ParseDocument processes every page in order and concatenates their records.
// Per-page failures are absorbed by the page resolvers; the only error this
// reports is a document that produced no records at all. Pages are processed
// sequentially so warnings stay in page order.
func (p *Parser) ParseDocument(pages []entity.RawPage) ([]entity.OrderRecord, error) {
	runID := uuid.New()

	var records []entity.OrderRecord
	for i, page := range pages {
		res := p.ParsePage(page, i)
		p.logger.Debug("extract.page",
			"run_id", runID, "page", i, "status", res.Status, "records", len(res.Records))
		records = append(records, res.Records...)
	}

	if len(records) == 0 {
		p.logger.Warn("extract.document.empty", "run_id", runID, "pages", len(pages))
		return nil, common.ErrNoOrder
	}

	p.logger.Info("extract.document.ok",
		"run_id", runID,
		"pages", len(pages),
		"records", len(records),
		"order", strOrEmpty(records[0].Metadata.OrderNumber),
	)
	return records, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
