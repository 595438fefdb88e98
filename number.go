package cartera

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount interprets a locale-formatted numeric string as an exact
// decimal. Comma thousands separators are removed, and at most one '.' is
// accepted as the fractional separator: "60000", "60,000", "60,000.00" and
// "150.50" all parse.
//
// Currency symbols, letters, or a second fractional separator make the input
// invalid and return a *ParseError naming the offending string. The result is
// exact: no binary floating point is involved, so later sums carry no
// cumulative rounding error.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, &ParseError{Input: s, Reason: "empty value"}
	}

	cleaned := strings.ReplaceAll(trimmed, ",", "")
	if strings.Count(cleaned, ".") > 1 {
		return decimal.Zero, &ParseError{Input: s, Reason: "multiple fractional separators"}
	}
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			return decimal.Zero, &ParseError{Input: s, Reason: "not a plain number"}
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ParseError{Input: s, Reason: "malformed decimal literal"}
	}
	return d, nil
}
