// Package rates holds the exchange rate table and the scanner that
// extracts it from a currencylayer live response. Rates are quoted as the
// amount of a currency bought by one unit of the base currency.
package rates

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultBase is the source currency the service quotes against unless a
// parser is built for another one.
const DefaultBase = "USD"

// Table maps 3-letter currency codes to rates against a single base
// currency. A parse builds a fresh table; callers replace tables wholesale
// instead of mutating them.
type Table map[string]float64

// Codes returns the table's currency codes in alphabetical order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rate returns the rate for code and whether the table holds it.
func (t Table) Rate(code string) (float64, bool) {
	rate, ok := t[code]
	return rate, ok
}

func (t Table) Len() int { return len(t) }

// NormalizeCode trims and uppercases a currency code and rejects anything
// that is not exactly 3 ASCII letters.
func NormalizeCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return "", fmt.Errorf("currency code must be 3 letters, got %q", code)
	}
	for _, r := range normalized {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("currency code must be 3 letters, got %q", code)
		}
	}
	return normalized, nil
}
