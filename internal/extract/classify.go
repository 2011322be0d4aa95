package extract

import (
	"strconv"
	"strings"
)

// rowKind is the decision for a single product-table row.
type rowKind int

const (
	rowIgnore rowKind = iota
	rowItemStart
	rowTerminator
	rowContinuation
)

// footerKeywords mark the totals block under the product table. A first cell
// containing any of them ends the table scan.
var footerKeywords = []string{"SUBTOTAL", "TOTAL", "IMPUESTO", "IMPTO", "AVISO", "FIRMA"}

// classifyRow decides what a grid row below the table header is. The open
// flag says whether an item is currently being accumulated, which is what
// makes a stray description cell a continuation rather than noise.
func classifyRow(row []*string, open bool) rowKind {
	seq := cellAt(row, colSeq)
	if n, err := strconv.Atoi(seq); err == nil && n > 0 && cellAt(row, colProductCode) != "" {
		return rowItemStart
	}
	upper := strings.ToUpper(seq)
	for _, kw := range footerKeywords {
		if strings.Contains(upper, kw) {
			return rowTerminator
		}
	}
	if open {
		if desc := cellAt(row, colDescription); desc != "" && !isPlainNumber(desc) {
			return rowContinuation
		}
	}
	return rowIgnore
}

// isPlainNumber reports whether s is only digits once separators are removed.
// Numeric spill-over from amount columns must not be glued onto descriptions.
func isPlainNumber(s string) bool {
	stripped := strings.NewReplacer(".", "", ",", "").Replace(s)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
