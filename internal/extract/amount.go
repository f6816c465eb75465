package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amount couples a parsed magnitude with the currency marker that was
// adjacent to it in the text, if any. Currency is already uppercased.
type amount struct {
	value    decimal.Decimal
	currency string
}

var (
	// A money-shaped token: digits, one fractional separator, exactly two
	// fractional digits, optionally preceded by a currency marker. Integers
	// never match; a bare "42" has to arrive through a typed numeric field.
	moneyTokenRE = regexp.MustCompile(`(?i)(?:(€|eur|\$|usd|gbp)\s*)?([0-9]+[.,][0-9]{2})`)

	standalonePriceRE = regexp.MustCompile(`^-?\d+[.,]\d{2}$`)
	trailingLetterRE  = regexp.MustCompile(`(?i)[A-Z]$`)
	whitespaceRE      = regexp.MustCompile(`\s+`)
)

// parseAmount locates the first money-shaped token in text and returns its
// magnitude plus the adjacent currency marker when present.
func parseAmount(text string) (amount, bool) {
	if strings.TrimSpace(text) == "" {
		return amount{}, false
	}
	m := moneyTokenRE.FindStringSubmatch(text)
	if m == nil {
		return amount{}, false
	}
	value, ok := parseLocalizedDecimal(m[2])
	if !ok {
		return amount{}, false
	}
	return amount{value: value, currency: strings.ToUpper(m[1])}, true
}

// largestAmount scans every money-shaped token in text and keeps the numeric
// maximum. The currency marker reported is the one adjacent to that specific
// maximum match, not any earlier one.
func largestAmount(text string) (amount, bool) {
	var max amount
	found := false
	for _, m := range moneyTokenRE.FindAllStringSubmatch(text, -1) {
		value, ok := parseLocalizedDecimal(m[2])
		if !ok {
			continue
		}
		if !found || value.GreaterThan(max.value) {
			max = amount{value: value, currency: strings.ToUpper(m[1])}
			found = true
		}
	}
	return max, found
}

// parseStandalonePrice reports whether the whole line is a monetary-looking
// token once decoration is stripped: whitespace, asterisks, a leading
// currency word, and a single trailing letter suffix.
func parseStandalonePrice(line string) (decimal.Decimal, bool) {
	sanitized := strings.ReplaceAll(line, "EUR", "")
	sanitized = strings.ReplaceAll(sanitized, "eur", "")
	sanitized = strings.ReplaceAll(sanitized, " ", "")
	sanitized = strings.Trim(sanitized, "*")
	sanitized = strings.TrimSpace(trailingLetterRE.ReplaceAllString(sanitized, ""))

	if !standalonePriceRE.MatchString(sanitized) {
		return decimal.Decimal{}, false
	}
	return parseLocalizedDecimal(sanitized)
}

// parseLocalizedDecimal converts a numeric token under up to three locale
// conventions, accepting the first that succeeds: invariant (dot fraction),
// comma-as-fraction, and grouped thousands with comma fraction. Upstream
// text can originate from differently-localized documents.
func parseLocalizedDecimal(token string) (decimal.Decimal, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return decimal.Decimal{}, false
	}

	candidates := []string{
		token,
		strings.Replace(token, ",", ".", 1),
		strings.Replace(strings.ReplaceAll(token, ".", ""), ",", ".", 1),
	}
	for _, c := range candidates {
		if strings.Count(c, ".") > 1 {
			continue
		}
		if d, err := decimal.NewFromString(c); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}
