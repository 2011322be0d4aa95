package extract

import (
	"regexp"

	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// Labeled-amount patterns. The grand total is letter-spaced on the printed
// form ("T O T A L"), so that shape is tried before the plain label.
var (
	subtotalRe    = regexp.MustCompile(`(?i)subtotal\s+(\d{1,3}(?:,\d{3})*(?:\.\d+)?)`)
	taxTotalRe    = regexp.MustCompile(`(?i)impto\.?\s+(\d{1,3}(?:,\d{3})*(?:\.\d+)?)`)
	totalSpacedRe = regexp.MustCompile(`(?i)t\s+o\s+t\s+a\s+l\s+(\d{1,3}(?:,\d{3})*(?:\.\d+)?)`)
	totalPlainRe  = regexp.MustCompile(`(?i)total\s+(\d{1,3}(?:,\d{3})*(?:\.\d+)?)`)
)

// ResolveTotals pulls the document-level amounts out of the page text.
// Missing labels leave 0.
func (p *Parser) ResolveTotals(text string) entity.OrderTotals {
	t := entity.OrderTotals{
		Subtotal: firstAmount(subtotalRe, text),
		Tax:      firstAmount(taxTotalRe, text),
	}
	if v, ok := matchAmount(totalSpacedRe, text); ok {
		t.Total = v
	} else {
		t.Total = firstAmount(totalPlainRe, text)
	}
	return t
}

func firstAmount(re *regexp.Regexp, text string) float64 {
	v, _ := matchAmount(re, text)
	return v
}

func matchAmount(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseDecimal(m[1])
}
