package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders d with at least minPlaces fractional digits.
// Trailing zeros beyond minPlaces are trimmed, so a satoshi-scaled 1.50000000
// prints as 1.5 while a fiat 67234.50 keeps its two places. No rounding
// happens here: whatever scale the decimal carries is preserved up to the
// trim.
func FormatAmount(d decimal.Decimal, minPlaces int) string {
	s := d.String()

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		if minPlaces > 0 {
			return s + "." + strings.Repeat("0", minPlaces)
		}
		return s
	}

	frac := s[dot+1:]
	for len(frac) > minPlaces && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	for len(frac) < minPlaces {
		frac += "0"
	}

	if frac == "" {
		return s[:dot]
	}
	return s[:dot] + "." + frac
}
