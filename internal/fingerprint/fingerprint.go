// Package fingerprint computes a short content digest over an extracted
// order, used to detect duplicate or silently edited resubmissions of the
// same order number. MD5 is fine here: the digest guards against accidents,
// not adversaries.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// Empty is returned for a record set with nothing in it.
const Empty = "000000000000"

const fieldSep = "|"

// Compute returns a 12-hex-character digest over the canonical form of the
// record set. Items are sorted by product code (description as tiebreaker)
// before hashing, so the digest does not depend on extraction order, and all
// numerics are re-rendered at 2 decimals so formatting-only differences
// between extractions collide.
func Compute(records []entity.OrderRecord) string {
	if len(records) == 0 {
		return Empty
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b entity.OrderRecord) int {
		if c := strings.Compare(itemCode(a), itemCode(b)); c != 0 {
			return c
		}
		return strings.Compare(strings.TrimSpace(a.Item.Description), strings.TrimSpace(b.Item.Description))
	})

	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, canonicalMetadata(sorted[0]))
	for _, r := range sorted {
		lines = append(lines, canonicalItem(r.Item))
	}

	sum := md5.Sum([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])[:12]
}

// canonicalMetadata joins order number, date, vendor and the grand total in a
// fixed order, with empty strings standing in for missing fields. All records
// in a set share metadata, so the first record is representative.
func canonicalMetadata(r entity.OrderRecord) string {
	return strings.Join([]string{
		trimmed(r.Metadata.OrderNumber),
		trimmed(r.Metadata.Date),
		trimmed(r.Metadata.Vendor),
		fmt.Sprintf("%.2f", r.Totals.Total),
	}, fieldSep)
}

// canonicalItem joins the item's hashed fields in a fixed alphabetical order
// by their schema names: Cantidad, Codigo Producto, Descripcion, Importe,
// Precio, Unidad.
func canonicalItem(it entity.LineItem) string {
	return strings.Join([]string{
		amount(it.Quantity),
		strings.TrimSpace(it.ProductCode),
		strings.TrimSpace(it.Description),
		amount(it.Amount),
		amount(it.UnitPrice),
		strings.TrimSpace(it.Unit),
	}, fieldSep)
}

// amount renders a numeric field rounded to 2 decimals in a fixed format, so
// "1000" and "1,000.00" hash identically once parsed.
func amount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

func itemCode(r entity.OrderRecord) string {
	return strings.TrimSpace(r.Item.ProductCode)
}

func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
