// Package renderer turns cartera reports into markdown strings for terminal
// display.
package renderer

import (
	"sort"

	"github.com/shopspring/decimal"
)

// percent formats an allocation percentage, e.g. "14.25%".
func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// sortedKeys returns the map keys in a stable order so tables render
// deterministically.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
