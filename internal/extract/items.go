package extract

import (
	"math"

	"github.com/gilerojas/orden-compra-app/constants"
	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// tableHeader is the first cell of the product-table header row.
const tableHeader = "Itm"

// defaultUnit is assumed when the unit column is blank.
const defaultUnit = "UN"

// ItemsResult is the line-item parser's output for one page.
type ItemsResult struct {
	Items  []entity.LineItem
	Status constants.TableStatus
}

// ParseItems walks the grid from the table-header anchor and reconstructs the
// product entries, merging multi-row descriptions and computing derived
// amounts. A page without the header token is a normal outcome, not an error;
// the worst case is an empty result with warnings.
func (p *Parser) ParseItems(grid [][]*string, pageNum int) ItemsResult {
	start := headerIndex(grid)
	if start == -1 {
		p.logger.Warn("items.header_missing", "page", pageNum, "header", tableHeader)
		return ItemsResult{Status: constants.TableNoHeader}
	}

	var items []entity.LineItem
	var open *entity.LineItem

	closeOpen := func() {
		if open == nil {
			return
		}
		it := *open
		open = nil
		if it.ProductCode == "" || it.Description == "" || it.Quantity == 0 {
			p.logger.Warn("items.dropped",
				"page", pageNum, "code", it.ProductCode, "description", it.Description)
			return
		}
		items = append(items, p.finalize(it))
	}

scan:
	for _, row := range grid[start+1:] {
		switch classifyRow(row, open != nil) {
		case rowItemStart:
			closeOpen()
			it := p.openItem(row)
			open = &it
		case rowContinuation:
			open.Description += " " + cellAt(row, colDescription)
		case rowTerminator:
			break scan
		}
	}
	closeOpen()

	if len(items) == 0 {
		p.logger.Warn("items.empty", "page", pageNum)
		return ItemsResult{Status: constants.TableNoItems}
	}
	p.logger.Debug("items.ok", "page", pageNum, "count", len(items))
	return ItemsResult{Items: items, Status: constants.TableFound}
}

// headerIndex returns the index of the first row whose first cell equals the
// header token, or -1.
func headerIndex(grid [][]*string) int {
	for i, row := range grid {
		if cellAt(row, colSeq) == tableHeader {
			return i
		}
	}
	return -1
}

// openItem reads the fixed columns of an item-start row. Unparsable numeric
// cells default to 0 rather than rejecting the row; the printed extended
// amount is trusted when it parses, even if it disagrees with qty*price.
func (p *Parser) openItem(row []*string) entity.LineItem {
	qty := numberAt(row, colQuantity)
	price := numberAt(row, colUnitPrice)
	unit := cellAt(row, colUnit)
	if unit == "" {
		unit = defaultUnit
	}
	amount, ok := parseDecimal(cellAt(row, colAmount))
	if !ok {
		amount = qty * price
	}
	return entity.LineItem{
		ProductCode: cellAt(row, colProductCode),
		Description: cellAt(row, colDescription),
		Quantity:    qty,
		Unit:        unit,
		UnitPrice:   price,
		DiscountPct: numberAt(row, colDiscountPct),
		TaxPct:      numberAt(row, colTaxPct),
		Amount:      amount,
	}
}

// finalize rounds the parsed numerics and computes the derived amounts:
// discount and tax from the extended amount, then the per-line total.
func (p *Parser) finalize(it entity.LineItem) entity.LineItem {
	it.Quantity = roundTo(it.Quantity, p.decimals)
	it.UnitPrice = roundTo(it.UnitPrice, p.decimals)
	it.DiscountPct = roundTo(it.DiscountPct, p.decimals)
	it.TaxPct = roundTo(it.TaxPct, p.decimals)
	it.Amount = roundTo(it.Amount, p.decimals)
	it.DiscountAmount = roundTo(it.Amount*it.DiscountPct/100, p.decimals)
	it.TaxAmount = roundTo(it.Amount*it.TaxPct/100, p.decimals)
	it.LineTotal = roundTo(it.Amount+it.TaxAmount-it.DiscountAmount, p.decimals)
	return it
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
