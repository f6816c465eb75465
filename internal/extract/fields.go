package extract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceeasy/analyzer/internal/docintel"
)

// amountTypes are the field tags accepted for monetary and quantity slots.
var amountTypes = map[docintel.FieldType]struct{}{
	docintel.FieldTypeCurrency: {},
	docintel.FieldTypeNumber:   {},
	docintel.FieldTypeInteger:  {},
	docintel.FieldTypeString:   {},
}

// mapFields reads the typed field bag onto the result: names, date, total,
// the structured item list, and the raw-content audit map. Currency codes
// discovered as a byproduct of amount fields are adopted first-writer-wins.
func mapFields(doc docintel.Document, profile FieldProfile, res *AnalysisResult) {
	if s, ok := firstString(doc.Fields, profile.Vendor); ok {
		res.VendorName = s
	}
	if s, ok := firstString(doc.Fields, profile.Customer); ok {
		res.CustomerName = s
	}
	if s, ok := firstString(doc.Fields, profile.Number); ok {
		res.InvoiceNumber = s
	}
	if t, ok := firstDate(doc.Fields, profile.Date); ok {
		res.InvoiceDate = &t
	}
	if value, currency, ok := firstAmount(doc.Fields, profile.Total); ok {
		res.TotalAmount = value
		adoptCurrency(res, currency)
	}

	mapItems(doc.Fields, profile, res)

	for key, field := range doc.Fields {
		content := strings.TrimSpace(field.Content)
		if content == "" {
			continue
		}
		if _, exists := res.RawFields[key]; exists {
			continue
		}
		res.RawFields[key] = field.Content
	}
}

// mapItems maps a list-typed items field onto LineItems, skipping entries
// that are not dictionaries and items that end up all-empty.
func mapItems(fields map[string]docintel.Field, profile FieldProfile, res *AnalysisResult) {
	var list []docintel.Field
	for _, alias := range profile.Items {
		field, ok := fields[alias]
		if !ok {
			continue
		}
		if arr, ok := field.ArrayValue(); ok {
			list = arr
			break
		}
	}

	for _, entry := range list {
		dict, ok := entry.ObjectValue()
		if !ok {
			continue
		}

		var item LineItem
		if s, ok := firstString(dict, profile.ItemDescription); ok {
			item.Description = s
		}
		if value, _, ok := firstAmount(dict, profile.ItemQuantity); ok {
			item.Quantity = value
		}
		if value, currency, ok := firstAmount(dict, profile.ItemUnitPrice); ok {
			item.UnitPrice = value
			adoptCurrency(res, currency)
		}
		if value, currency, ok := firstAmount(dict, profile.ItemTotal); ok {
			item.TotalPrice = value
			adoptCurrency(res, currency)
		}

		if item.isEmpty() {
			continue
		}
		res.Items = append(res.Items, item)
	}
}

// firstString returns the first alias present as a string-typed field.
func firstString(fields map[string]docintel.Field, aliases []string) (string, bool) {
	for _, alias := range aliases {
		field, ok := fields[alias]
		if !ok {
			continue
		}
		if s, ok := field.StringValue(); ok {
			return s, true
		}
	}
	return "", false
}

// firstDate returns the first alias present that is date-typed or a parseable
// string, as UTC.
func firstDate(fields map[string]docintel.Field, aliases []string) (time.Time, bool) {
	for _, alias := range aliases {
		field, ok := fields[alias]
		if !ok {
			continue
		}
		switch field.Type {
		case docintel.FieldTypeDate:
			if t, ok := field.DateValue(); ok {
				return t, true
			}
		case docintel.FieldTypeString:
			if t, ok := parseGenericDate(field.ValueString); ok {
				return t, true
			}
		default:
			// other tags are not dates; try the next alias
		}
	}
	return time.Time{}, false
}

// firstAmount stops at the first alias present whose tag is an accepted
// amount type, then converts it. A field that matches by type but fails to
// parse ends the search as a soft-miss.
func firstAmount(fields map[string]docintel.Field, aliases []string) (*decimal.Decimal, string, bool) {
	for _, alias := range aliases {
		field, ok := fields[alias]
		if !ok {
			continue
		}
		if _, accepted := amountTypes[field.Type]; !accepted {
			continue
		}
		value, currency := amountFromField(field)
		return value, currency, value != nil
	}
	return nil, "", false
}

// amountFromField converts a typed field to a decimal without any regex when
// the tag is already numeric, and through the money-token parser when the
// payload is a string. The second return is a currency code byproduct.
func amountFromField(field docintel.Field) (*decimal.Decimal, string) {
	switch field.Type {
	case docintel.FieldTypeCurrency:
		cv := field.ValueCurrency
		if cv == nil {
			return nil, ""
		}
		d := decimal.NewFromFloat(cv.Amount)
		code := cv.CurrencyCode
		if code == "" {
			code = cv.CurrencySymbol
		}
		return &d, code
	case docintel.FieldTypeNumber:
		if field.ValueNumber == nil {
			return nil, ""
		}
		d := decimal.NewFromFloat(*field.ValueNumber)
		return &d, ""
	case docintel.FieldTypeInteger:
		if field.ValueInteger == nil {
			return nil, ""
		}
		d := decimal.NewFromInt(*field.ValueInteger)
		return &d, ""
	case docintel.FieldTypeString:
		if a, ok := parseAmount(field.ValueString); ok {
			return &a.value, a.currency
		}
		return nil, ""
	default:
		// unexpected tag: skipped, never fatal
		return nil, ""
	}
}

// adoptCurrency sets the result currency only if none is set yet.
func adoptCurrency(res *AnalysisResult, code string) {
	if res.CurrencyCode == "" && strings.TrimSpace(code) != "" {
		res.CurrencyCode = code
	}
}
