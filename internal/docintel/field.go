package docintel

import "time"

// FieldType tags a Field's payload. The set is closed: consumers switch over
// these values and skip anything they do not recognize.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeDate     FieldType = "date"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeNumber   FieldType = "number"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeArray    FieldType = "array"
	FieldTypeObject   FieldType = "object"
)

// CurrencyValue is the typed payload of a currency field.
type CurrencyValue struct {
	Amount         float64 `json:"amount"`
	CurrencyCode   string  `json:"currencyCode,omitempty"`
	CurrencySymbol string  `json:"currencySymbol,omitempty"`
}

// Field is the tagged union the document-understanding service produces for
// every recognized key. Exactly one Value* payload corresponds to Type;
// Content always carries the literal source text span. A field whose payload
// does not match its tag is treated as absent, never as an error.
type Field struct {
	Type          FieldType        `json:"type"`
	Content       string           `json:"content,omitempty"`
	Confidence    float64          `json:"confidence,omitempty"`
	ValueString   string           `json:"valueString,omitempty"`
	ValueDate     string           `json:"valueDate,omitempty"` // YYYY-MM-DD
	ValueCurrency *CurrencyValue   `json:"valueCurrency,omitempty"`
	ValueNumber   *float64         `json:"valueNumber,omitempty"`
	ValueInteger  *int64           `json:"valueInteger,omitempty"`
	ValueArray    []Field          `json:"valueArray,omitempty"`
	ValueObject   map[string]Field `json:"valueObject,omitempty"`
}

// StringValue returns the payload of a string-typed field.
func (f Field) StringValue() (string, bool) {
	if f.Type != FieldTypeString || f.ValueString == "" {
		return "", false
	}
	return f.ValueString, true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// DateValue returns the payload of a date-typed field as UTC.
func (f Field) DateValue() (time.Time, bool) {
	if f.Type != FieldTypeDate || f.ValueDate == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, f.ValueDate); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ArrayValue returns the payload of an array-typed field.
func (f Field) ArrayValue() ([]Field, bool) {
	if f.Type != FieldTypeArray || f.ValueArray == nil {
		return nil, false
	}
	return f.ValueArray, true
}

// ObjectValue returns the payload of an object-typed field.
func (f Field) ObjectValue() (map[string]Field, bool) {
	if f.Type != FieldTypeObject || f.ValueObject == nil {
		return nil, false
	}
	return f.ValueObject, true
}
