package docintel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldAccessorsMatchTag(t *testing.T) {
	f := Field{Type: FieldTypeString, ValueString: "Acme GmbH"}
	s, ok := f.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "Acme GmbH", s)

	// wrong tag: every other accessor misses
	_, ok = f.DateValue()
	assert.False(t, ok)
	_, ok = f.ArrayValue()
	assert.False(t, ok)
	_, ok = f.ObjectValue()
	assert.False(t, ok)
}

func TestFieldDateValue(t *testing.T) {
	f := Field{Type: FieldTypeDate, ValueDate: "2025-03-14"}
	d, ok := f.DateValue()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	f = Field{Type: FieldTypeDate, ValueDate: "not a date"}
	_, ok = f.DateValue()
	assert.False(t, ok)

	f = Field{Type: FieldTypeDate}
	_, ok = f.DateValue()
	assert.False(t, ok)
}

func TestFieldTagWithoutPayloadIsAbsent(t *testing.T) {
	f := Field{Type: FieldTypeArray}
	_, ok := f.ArrayValue()
	assert.False(t, ok)

	f = Field{Type: FieldTypeObject}
	_, ok = f.ObjectValue()
	assert.False(t, ok)

	f = Field{Type: FieldTypeString}
	_, ok = f.StringValue()
	assert.False(t, ok)
}

func TestFieldDecodeNestedEnvelope(t *testing.T) {
	raw := `{
		"type": "array",
		"valueArray": [{
			"type": "object",
			"valueObject": {
				"Description": {"type": "string", "valueString": "Widget", "content": "Widget"},
				"TotalPrice": {"type": "currency", "valueCurrency": {"amount": 6.5, "currencyCode": "EUR"}, "content": "6,50"}
			}
		}]
	}`

	var f Field
	require.NoError(t, json.Unmarshal([]byte(raw), &f))

	arr, ok := f.ArrayValue()
	require.True(t, ok)
	require.Len(t, arr, 1)

	dict, ok := arr[0].ObjectValue()
	require.True(t, ok)
	require.NotNil(t, dict["TotalPrice"].ValueCurrency)
	assert.Equal(t, "EUR", dict["TotalPrice"].ValueCurrency.CurrencyCode)
	assert.InDelta(t, 6.5, dict["TotalPrice"].ValueCurrency.Amount, 1e-9)
}
