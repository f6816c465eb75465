package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/invoiceeasy/analyzer/internal/docintel"
)

// lineInfo is the transient classification of one detected text line. It is
// built once per page set, consumed in a single reconstruction pass, and
// discarded.
type lineInfo struct {
	index             int
	text              string
	centerX           float64
	hasLetters        bool
	looksLikeLabel    bool
	looksLikeQuantity bool
	price             *decimal.Decimal
}

var (
	quantityPairRE = regexp.MustCompile(`\d+\s*(x|×)\s*\d+`)
	quantityUnitRE = regexp.MustCompile(`\d+\s?(kg|g|l|ml|pcs|pc|шт|st|pkt)`)
)

// itemsFromPages reconstructs line items from page/line geometry when no
// structured item list exists. Layout engines reliably place a price token at
// the right edge of a row; the nearest unclaimed preceding line with letters,
// not itself a short label or unit token, is the best guess at what was
// purchased.
func itemsFromPages(pages []docintel.Page) []LineItem {
	if len(pages) == 0 {
		return nil
	}

	var lines []lineInfo
	index := 0
	for _, page := range pages {
		for _, line := range page.Lines {
			text := strings.TrimSpace(line.Content)
			if text == "" {
				index++
				continue
			}
			info := lineInfo{
				index:             index,
				text:              text,
				centerX:           computeCenterX(line.Polygon),
				hasLetters:        containsLetter(text),
				looksLikeLabel:    isLikelyLabel(text),
				looksLikeQuantity: looksLikeQuantity(text),
			}
			if price, ok := parseStandalonePrice(text); ok {
				info.price = &price
			}
			lines = append(lines, info)
			index++
		}
	}
	if len(lines) == 0 {
		return nil
	}

	used := make(map[int]bool)
	var items []LineItem

	for i, priceLine := range lines {
		if priceLine.price == nil {
			continue
		}
		description := findDescriptionLine(lines, i, used)
		if description == nil {
			continue
		}
		used[description.index] = true

		// Quantity or measurement annotations printed between the product
		// name and its price belong to the item.
		var between []string
		for _, l := range lines {
			if l.index > description.index && l.index < priceLine.index && l.looksLikeQuantity {
				between = append(between, l.text)
			}
		}

		text := description.text
		if len(between) > 0 {
			text = text + "\n" + strings.Join(between, "\n")
		}

		price := *priceLine.price
		items = append(items, LineItem{
			Description: strings.TrimSpace(text),
			TotalPrice:  &price,
		})
	}
	return items
}

// findDescriptionLine walks backward from the price line, skipping other
// price lines and anything without letters, short labels, quantity tokens,
// and lines already consumed by an earlier item.
func findDescriptionLine(lines []lineInfo, pricePos int, used map[int]bool) *lineInfo {
	for pos := pricePos - 1; pos >= 0; pos-- {
		candidate := lines[pos]
		if candidate.price != nil {
			continue
		}
		if !candidate.hasLetters || candidate.looksLikeLabel || candidate.looksLikeQuantity ||
			used[candidate.index] {
			continue
		}
		return &lines[pos]
	}
	return nil
}

// computeCenterX averages the x coordinates of a polygon given as
// alternating x/y values.
func computeCenterX(polygon []float64) float64 {
	if len(polygon) < 2 {
		return 0
	}
	sum := 0.0
	count := 0
	for i := 0; i < len(polygon); i += 2 {
		sum += polygon[i]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// isLikelyLabel marks short labels: at most 4 letters with no spaces, or any
// line containing ':' or '='.
func isLikelyLabel(text string) bool {
	cleaned := whitespaceRE.ReplaceAllString(text, "")
	if len([]rune(cleaned)) <= 4 && cleaned != "" && allLetters(cleaned) {
		return true
	}
	return strings.ContainsAny(cleaned, ":=")
}

// looksLikeQuantity marks "qty × unit" style annotations.
func looksLikeQuantity(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "stk") || strings.Contains(lower, "stück") ||
		strings.Contains(lower, "x ") || strings.HasSuffix(lower, "x") {
		return true
	}
	if quantityPairRE.MatchString(lower) {
		return true
	}
	return quantityUnitRE.MatchString(lower)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
