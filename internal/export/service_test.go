package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gilerojas/orden-compra-app/constants"
	"github.com/gilerojas/orden-compra-app/internal/entity"
	"github.com/gilerojas/orden-compra-app/internal/fingerprint"
)

func strPtr(s string) *string { return &s }

func sampleRecords() []entity.OrderRecord {
	md := entity.OrderMetadata{
		OrderNumber: strPtr("4500321"),
		Date:        strPtr("25/08/2026"),
		Vendor:      strPtr("ACME SUPPLIES SRL"),
		Currency:    constants.CurrencyUSD,
		VendorCode:  strPtr("SUP-001"),
	}
	totals := entity.OrderTotals{Subtotal: 55, Tax: 0, Total: 55}
	return []entity.OrderRecord{
		{Metadata: md, Totals: totals, Item: entity.LineItem{
			ProductCode: "QX-100", Description: "Acido citrico", Quantity: 10,
			Unit: "UN", UnitPrice: 5, Amount: 50, LineTotal: 50,
		}},
		{Metadata: md, Totals: totals, Item: entity.LineItem{
			ProductCode: "QX-200", Description: "Soda caustica", Quantity: 2,
			Unit: "KG", UnitPrice: 2.5, Amount: 5, LineTotal: 5,
		}},
	}
}

func TestOrderXLSX(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	records := sampleRecords()
	now := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	data, err := svc.OrderXLSX(records, now)
	if err != nil {
		t.Fatalf("OrderXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	const sheet = "Ordenes"
	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("read %s: %v", ref, err)
		}
		return v
	}

	// Header row: 21 record columns then the control columns.
	if got := cell("A1"); got != "Numero Orden" {
		t.Errorf("A1 = %q", got)
	}
	if got := cell("U1"); got != "Total" {
		t.Errorf("U1 = %q", got)
	}
	if got := cell("V1"); got != constants.ColFingerprint {
		t.Errorf("V1 = %q", got)
	}
	if got := cell("X1"); got != constants.ColRowStatus {
		t.Errorf("X1 = %q", got)
	}

	// Data rows.
	if got := cell("A2"); got != "4500321" {
		t.Errorf("A2 = %q", got)
	}
	if got := cell("I3"); got != "QX-200" {
		t.Errorf("I3 = %q", got)
	}
	if got := cell("V2"); got != fingerprint.Compute(records) {
		t.Errorf("V2 = %q, want the record-set fingerprint", got)
	}
	if got := cell("W2"); got != "2026-08-25 14:30:00" {
		t.Errorf("W2 = %q", got)
	}
	if got := cell("X2"); got != constants.RowStatusActive {
		t.Errorf("X2 = %q", got)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Errorf("rows = %d, want %d", len(rows), len(records)+1)
	}
}
