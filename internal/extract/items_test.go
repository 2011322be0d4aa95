package extract

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/gilerojas/orden-compra-app/constants"
)

// row builds a grid row; empty strings become null cells, matching what the
// external extractor emits for unassigned regions.
func row(cells ...string) []*string {
	out := make([]*string, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		v := c
		out[i] = &v
	}
	return out
}

func testParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{})
}

func TestParseItemsDerivedAmounts(t *testing.T) {
	// Printed extended amount 45.00 deliberately differs from qty*price (50):
	// the printed value wins.
	grid := [][]*string{
		row("Itm", "Codigo", "Descripcion"),
		row("1", "SKU1", "Widget A", "", "", "10", "UN", "", "5.00", "", "10", "0", "", "45.00"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if res.Status != constants.TableFound {
		t.Fatalf("status = %s, want %s", res.Status, constants.TableFound)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}

	it := res.Items[0]
	if it.Quantity != 10 || it.UnitPrice != 5 || it.Amount != 45 {
		t.Fatalf("parsed qty=%v price=%v amount=%v", it.Quantity, it.UnitPrice, it.Amount)
	}
	if it.DiscountAmount != 4.5 {
		t.Errorf("DiscountAmount = %v, want 4.5", it.DiscountAmount)
	}
	if it.TaxAmount != 0 {
		t.Errorf("TaxAmount = %v, want 0", it.TaxAmount)
	}
	if it.LineTotal != 40.5 {
		t.Errorf("LineTotal = %v, want 40.5", it.LineTotal)
	}
}

func TestParseItemsContinuationMergesDescription(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "Acido citrico", "", "", "2", "KG", "", "12.50", "", "0", "18", "", "25.00"),
		row("", "", "grado alimenticio"),
		row("2", "SKU2", "Soda caustica", "", "", "1", "UN", "", "8.00", "", "0", "0", "", "8.00"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if len(res.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(res.Items))
	}
	if got, want := res.Items[0].Description, "Acido citrico grado alimenticio"; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
	if res.Items[1].Description != "Soda caustica" {
		t.Errorf("second description = %q", res.Items[1].Description)
	}
}

func TestParseItemsNumericSpillIsNotContinuation(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "Widget", "", "", "1", "UN", "", "3.00", "", "0", "0", "", "3.00"),
		row("", "", "1,250.00"), // amount spill-over in the description column
	}

	res := testParser(t).ParseItems(grid, 0)
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	if res.Items[0].Description != "Widget" {
		t.Errorf("description = %q, numeric spill was merged", res.Items[0].Description)
	}
}

func TestParseItemsTerminatorStopsScan(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "Widget", "", "", "1", "UN", "", "3.00", "", "0", "0", "", "3.00"),
		row("SUBTOTAL", "", "", "", "", "", "", "", "", "", "", "", "", "3.00"),
		row("2", "SKU2", "Should not appear", "", "", "1", "UN", "", "1.00", "", "0", "0", "", "1.00"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1 (scan must stop at the totals block)", len(res.Items))
	}
}

func TestParseItemsNoHeader(t *testing.T) {
	for name, grid := range map[string][][]*string{
		"nil grid":       nil,
		"no header row":  {row("1", "SKU1", "Widget", "", "", "1", "UN", "", "3.00", "", "0", "0", "", "3.00")},
		"blank rows":     {row(""), row("")},
	} {
		t.Run(name, func(t *testing.T) {
			res := testParser(t).ParseItems(grid, 0)
			if res.Status != constants.TableNoHeader {
				t.Errorf("status = %s, want %s", res.Status, constants.TableNoHeader)
			}
			if len(res.Items) != 0 {
				t.Errorf("items = %d, want 0", len(res.Items))
			}
		})
	}
}

func TestParseItemsDropsIncompleteItems(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		// missing quantity
		row("1", "SKU1", "Widget", "", "", "", "UN", "", "3.00", "", "0", "0", "", "3.00"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if res.Status != constants.TableNoItems {
		t.Errorf("status = %s, want %s", res.Status, constants.TableNoItems)
	}
	if len(res.Items) != 0 {
		t.Errorf("items = %d, want 0", len(res.Items))
	}
}

func TestParseItemsDefaults(t *testing.T) {
	// Blank unit defaults to UN; unparsable amount falls back to qty*price.
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "Widget", "", "", "4", "", "", "2.50", "", "", "", "", "n/a"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	it := res.Items[0]
	if it.Unit != "UN" {
		t.Errorf("unit = %q, want UN", it.Unit)
	}
	if it.Amount != 10 {
		t.Errorf("amount = %v, want qty*price = 10", it.Amount)
	}
}

func TestParseItemsThousandsSeparators(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "Bulk", "", "", "1,000", "UN", "", "1,250.50", "", "0", "0", "", "1,250,500.00"),
	}

	res := testParser(t).ParseItems(grid, 0)
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	it := res.Items[0]
	if it.Quantity != 1000 || it.UnitPrice != 1250.5 || it.Amount != 1250500 {
		t.Errorf("qty=%v price=%v amount=%v", it.Quantity, it.UnitPrice, it.Amount)
	}
}

func TestDerivedTotalIdentity(t *testing.T) {
	grid := [][]*string{
		row("Itm"),
		row("1", "SKU1", "A", "", "", "3", "UN", "", "7.77", "", "12.5", "18", "", "23.31"),
		row("2", "SKU2", "B", "", "", "9", "UN", "", "0.333", "", "5", "16", "", "2.997"),
	}

	res := testParser(t).ParseItems(grid, 0)
	for _, it := range res.Items {
		want := math.Round((it.Amount+it.TaxAmount-it.DiscountAmount)*1000) / 1000
		if math.Abs(it.LineTotal-want) > 1e-9 {
			t.Errorf("%s: LineTotal = %v, want %v", it.ProductCode, it.LineTotal, want)
		}
	}
}
