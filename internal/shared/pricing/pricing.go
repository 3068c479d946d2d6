// Package pricing handles the catalog's display prices. Prices are stored as
// the shopper sees them ("Rs. 14,900"); this package owns the currency prefix
// and the numeric parse used for cart totals.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// Prefix is the fixed currency prefix every stored price begins with.
const Prefix = "Rs. "

var prefixRe = regexp.MustCompile(`^Rs\.\s?`)

// Normalize forces the currency prefix onto a typed price value:
// "14900" -> "Rs. 14900", "Rs.14900" -> "Rs. 14900". Already-prefixed
// values pass through unchanged.
func Normalize(v string) string {
	if strings.HasPrefix(v, Prefix) {
		return v
	}
	return Prefix + prefixRe.ReplaceAllString(v, "")
}

// Amount extracts the numeric value of a display price, ignoring the prefix
// and thousands separators ("Rs. 14,900" -> 14900). Unparseable prices are 0.
func Amount(price string) float64 {
	// Strip the prefix first: its dot would otherwise leak into the parse.
	price = prefixRe.ReplaceAllString(price, "")
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatAmount renders a numeric amount as a display price with the fixed
// prefix ("Rs. 14900").
func FormatAmount(v float64) string {
	return Prefix + strconv.FormatFloat(v, 'f', -1, 64)
}
