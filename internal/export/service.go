package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gilerojas/orden-compra-app/constants"
	"github.com/gilerojas/orden-compra-app/internal/entity"
	"github.com/gilerojas/orden-compra-app/internal/fingerprint"
)

// Service produces XLSX bytes in the layout the spreadsheet workflow uploads.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// OrderXLSX returns an XLSX workbook (as bytes) for one extracted order: the
// fixed 21-column record schema followed by the three control columns the
// upload workflow owns — fingerprint, last-modified timestamp and row status.
func (s *Service) OrderXLSX(records []entity.OrderRecord, now time.Time) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Ordenes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := append(append([]string{}, constants.RecordColumns...),
		constants.ColFingerprint,
		constants.ColLastModified,
		constants.ColRowStatus,
	)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	fp := fingerprint.Compute(records)
	stamp := now.Format("2006-01-02 15:04:05")

	for i, r := range records {
		row := i + 2
		values := append(recordValues(r), fp, stamp, constants.RowStatusActive)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "C", "D", 32) // vendor, address
	_ = f.SetColWidth(sheet, "J", "J", 44) // description
	_ = f.SetColWidth(sheet, "V", "V", 14) // fingerprint
	_ = f.SetColWidth(sheet, "W", "W", 20) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"fingerprint", fp,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// recordValues flattens one record into the 21-column schema order.
func recordValues(r entity.OrderRecord) []any {
	return []any{
		strOrEmpty(r.Metadata.OrderNumber),
		strOrEmpty(r.Metadata.Date),
		strOrEmpty(r.Metadata.Vendor),
		strOrEmpty(r.Metadata.VendorAddress),
		strOrEmpty(r.Metadata.TaxID),
		strOrEmpty(r.Metadata.Terms),
		r.Metadata.Currency,
		strOrEmpty(r.Metadata.VendorCode),
		r.Item.ProductCode,
		r.Item.Description,
		r.Item.Quantity,
		r.Item.Unit,
		r.Item.UnitPrice,
		r.Item.DiscountPct,
		r.Item.TaxPct,
		r.Item.Amount,
		r.Item.DiscountAmount,
		r.Item.TaxAmount,
		r.Item.LineTotal,
		r.Totals.Subtotal,
		r.Totals.Total,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
