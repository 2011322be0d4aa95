package entity

// RawPage is one page's worth of extractor output: a plain-text rendering
// plus a best-effort table grid. Cells are pointers because the external
// extractor emits null for regions it could not assign to a column.
type RawPage struct {
	Text string      `json:"text"`
	Grid [][]*string `json:"grid,omitempty"`
}

// OrderMetadata holds the header-level fields of a purchase order. Every
// field except Currency is optional; nil means the label was not found on
// the page.
type OrderMetadata struct {
	OrderNumber   *string `json:"order_number,omitempty"`
	Date          *string `json:"date,omitempty"` // DD/MM/YYYY as printed
	Vendor        *string `json:"vendor,omitempty"`
	VendorAddress *string `json:"vendor_address,omitempty"`
	TaxID         *string `json:"tax_id,omitempty"`
	Terms         *string `json:"terms,omitempty"`
	Currency      string  `json:"currency"`
	VendorCode    *string `json:"vendor_code,omitempty"`
}

// LineItem is one product line of the order. Amount is the printed extended
// amount; DiscountAmount, TaxAmount and LineTotal are derived from it at
// parse time.
type LineItem struct {
	ProductCode    string  `json:"product_code"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitPrice      float64 `json:"unit_price"`
	DiscountPct    float64 `json:"discount_pct"`
	TaxPct         float64 `json:"tax_pct"`
	Amount         float64 `json:"amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	LineTotal      float64 `json:"line_total"`
}

// OrderTotals are the document-level amounts read from the page text.
// Absent labels leave the zero value.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// OrderRecord is the externally visible unit: one product line joined with
// the order's metadata and totals. Records are built once by the assembler
// and never mutated.
type OrderRecord struct {
	Metadata OrderMetadata `json:"metadata"`
	Item     LineItem      `json:"item"`
	Totals   OrderTotals   `json:"totals"`
}
