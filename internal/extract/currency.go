package extract

import (
	"strings"

	"github.com/invoiceeasy/analyzer/constants"
)

// SniffCurrency scans text case-insensitively for the first currency token in
// the table's declared order and returns its ISO code. "No match" is a valid
// outcome distinct from the EUR default.
func SniffCurrency(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, entry := range constants.CurrencyTokens {
		if strings.Contains(lower, entry.Token) {
			return entry.Code, true
		}
	}
	return "", false
}

// SniffCurrencyOrDefault is SniffCurrency with the documented EUR fallback
// for callers that need a code no matter what.
func SniffCurrencyOrDefault(text string) string {
	if code, ok := SniffCurrency(text); ok {
		return code
	}
	return constants.DefaultCurrencyCode
}
