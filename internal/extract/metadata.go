package extract

import (
	"regexp"
	"strings"

	"github.com/gilerojas/orden-compra-app/constants"
	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// Header-label patterns. The ordinal in "N° Orden" shows up as º or ° depending
// on how the extractor rendered the glyph.
var (
	orderNumberRe = regexp.MustCompile(`(?i)n[º°]\s*orden\s*:?\s*(\d+)`)
	orderDateRe   = regexp.MustCompile(`(?i)fecha\s*:?\s*(\d{2}/\d{2}/\d{4})`)
)

// Fixed layout anchors. Vendor and buyer share lines on this form, so the
// buyer's printed name and street are used to cut the vendor's portion.
const (
	vendorAnchor = "Solicitado a:"
	buyerName    = "SOLUCIONES QUIMICAS"
	buyerStreet  = "C/ Jatfres"

	supplierHeaderCell = "Suplidor"
	currencyHeaderCell = "Moneda"

	// Values sit two grid rows below their header row.
	headerValueOffset = 2

	colSupplierCode = 0
	colSupplierRNC  = 3
	colSupplierTerm = 9
	colCurrencyCell = 3
)

// ResolveMetadata extracts the order's header fields from the page text and
// grid. Every lookup is independent; a field whose label or cell is missing
// stays nil and the rest still resolve. It never fails.
func (p *Parser) ResolveMetadata(page entity.RawPage) entity.OrderMetadata {
	md := entity.OrderMetadata{Currency: constants.CurrencyUSD}
	lines := strings.Split(page.Text, "\n")

	if m := orderNumberRe.FindStringSubmatch(page.Text); m != nil {
		md.OrderNumber = &m[1]
	}
	if m := orderDateRe.FindStringSubmatch(page.Text); m != nil {
		md.Date = &m[1]
	}

	md.Vendor = vendorName(lines)
	md.VendorAddress = vendorAddress(lines)

	for i, row := range page.Grid {
		first := cellAt(row, 0)
		if first == "" {
			continue
		}
		if isSupplierHeader(first) && i+headerValueOffset < len(page.Grid) {
			values := page.Grid[i+headerValueOffset]
			md.VendorCode = optionalCell(values, colSupplierCode)
			md.TaxID = optionalCell(values, colSupplierRNC)
			md.Terms = optionalCell(values, colSupplierTerm)
		}
		if strings.Contains(first, currencyHeaderCell) && i+headerValueOffset < len(page.Grid) {
			md.Currency = classifyCurrency(cellAt(page.Grid[i+headerValueOffset], colCurrencyCell))
		}
	}

	if md.OrderNumber == nil {
		p.logger.Debug("metadata.order_number_missing")
	}
	return md
}

// vendorName finds the anchor line and takes the next line's prefix up to the
// buyer's own printed name, since both names share that line.
func vendorName(lines []string) *string {
	for i, line := range lines {
		if !strings.Contains(line, vendorAnchor) {
			continue
		}
		if i+1 >= len(lines) {
			return nil
		}
		name := strings.TrimSpace(strings.SplitN(lines[i+1], buyerName, 2)[0])
		if name == "" {
			return nil
		}
		return &name
	}
	return nil
}

// vendorAddress returns the first line carrying a street marker, cut before
// the buyer's street when both addresses were printed on it.
func vendorAddress(lines []string) *string {
	for _, line := range lines {
		if !strings.Contains(line, "AV.") && !strings.Contains(line, "C/") {
			continue
		}
		addr := line
		if strings.Contains(line, buyerStreet) {
			addr = strings.SplitN(line, buyerStreet, 2)[0]
		}
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return nil
		}
		return &addr
	}
	return nil
}

func isSupplierHeader(cell string) bool {
	return strings.Contains(cell, supplierHeaderCell) &&
		(strings.Contains(cell, "Código") || strings.Contains(cell, "Codigo"))
}

// classifyCurrency maps the raw cell near the "Moneda" header onto a currency
// code. The bare "US" substring check is deliberately loose; the form prints
// variants like "US $" and "Extranjera US $".
func classifyCurrency(raw string) string {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "USD"),
		strings.Contains(upper, "US"),
		strings.Contains(raw, "Extranjera"):
		return constants.CurrencyUSD
	case strings.Contains(upper, "DOP"):
		return constants.CurrencyDOP
	}
	return constants.CurrencyUSD
}
