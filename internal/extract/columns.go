package extract

import (
	"strconv"
	"strings"
)

// Column offsets into an extracted product-table row. The line/text detection
// strategy leaves padding columns between the printed ones, so the offsets
// are sparse.
const (
	colSeq         = 0  // "Itm" sequence number
	colProductCode = 1  // "Codigo"
	colDescription = 2  // "Descripcion"
	colQuantity    = 5  // "Cantidad"
	colUnit        = 6  // "Unid."
	colUnitPrice   = 8  // "Precio"
	colDiscountPct = 10 // "Dto.%"
	colTaxPct      = 11 // "Imp.%"
	colAmount      = 13 // "Importe"
)

// cellAt returns the trimmed cell at idx, or "" when the row is short or the
// cell is null. All positional reads go through here so short rows never
// panic.
func cellAt(row []*string, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(*row[idx])
}

// optionalCell is cellAt with a null sentinel for absent or blank cells.
func optionalCell(row []*string, idx int) *string {
	s := cellAt(row, idx)
	if s == "" {
		return nil
	}
	return &s
}

// parseDecimal parses a printed amount, tolerating thousands separators and
// a trailing percent sign.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, ",", ""), "%", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numberAt reads the cell at idx as a decimal, defaulting to 0 on missing or
// unparsable values.
func numberAt(row []*string, idx int) float64 {
	v, ok := parseDecimal(cellAt(row, idx))
	if !ok {
		return 0
	}
	return v
}
