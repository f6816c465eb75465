package extract

import (
	"regexp"
	"strings"

	"github.com/invoiceeasy/analyzer/constants"
)

var clockTimeRE = regexp.MustCompile(`\d{1,2}[:.]\d{2}(:\d{2})?`)

// itemsFromRawText reconstructs line items from line-delimited plain text
// when no page geometry is available. For every standalone price it scans
// backward for a description; hitting a summary/footer line aborts the scan
// for that price, and a price with no recoverable description is dropped
// entirely.
func itemsFromRawText(content string) []LineItem {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	used := make(map[int]bool)
	var items []LineItem

	for i, line := range lines {
		price, ok := parseStandalonePrice(line)
		if !ok {
			continue
		}

		var descriptionParts []string
		var quantityParts []string

		for pointer := i - 1; pointer >= 0; pointer-- {
			candidate := lines[pointer]
			if _, isPrice := parseStandalonePrice(candidate); isPrice {
				continue
			}

			lower := strings.ToLower(candidate)
			if isSummaryLine(lower) {
				// We walked past the item block into the footer region.
				descriptionParts = nil
				quantityParts = nil
				break
			}
			if used[pointer] {
				continue
			}
			if isSkippableLine(lower) {
				continue
			}
			if looksLikeQuantity(candidate) {
				quantityParts = append([]string{candidate}, quantityParts...)
				continue
			}

			descriptionParts = append([]string{candidate}, descriptionParts...)
			used[pointer] = true
			break
		}

		if len(descriptionParts) == 0 {
			continue
		}

		full := strings.Join(append(descriptionParts, quantityParts...), "\n")
		if strings.TrimSpace(full) == "" {
			continue
		}

		total := price
		items = append(items, LineItem{
			Description: strings.TrimSpace(full),
			TotalPrice:  &total,
		})
	}
	return items
}

// isSkippableLine marks lines that carry no item information on their own:
// currency-only tokens, bare 1-2 character noise, and unit abbreviations.
// They are skipped without stopping a backward scan.
func isSkippableLine(lower string) bool {
	if strings.TrimSpace(lower) == "" {
		return true
	}
	trimmed := strings.Trim(lower, "*:")
	if len([]rune(trimmed)) <= 2 && !containsLetter(trimmed) {
		return true
	}
	if _, ok := constants.CurrencyOnlyTokens[trimmed]; ok {
		return true
	}
	for _, token := range constants.MeasurementTokens {
		if trimmed == token {
			return true
		}
	}
	return false
}

// isSummaryLine marks lines from a receipt's footer or summary region:
// clock times, calendar dates, and the multilingual summary vocabulary.
// Hitting one aborts the backward description scan.
func isSummaryLine(lower string) bool {
	if strings.TrimSpace(lower) == "" {
		return true
	}
	if clockTimeRE.MatchString(lower) || dateTokenRE.MatchString(lower) {
		return true
	}
	for _, keyword := range constants.SummaryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
