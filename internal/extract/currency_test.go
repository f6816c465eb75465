package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffCurrencyMatches(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Total 12,50 €", "EUR"},
		{"amount due: $14.99", "USD"},
		{"paid 8.00 GBP", "GBP"},
		{"pris 120,00 kr", "SEK"},
		{"suma 45,00 zł", "PLN"},
	}
	for _, tc := range tests {
		got, ok := SniffCurrency(tc.text)
		assert.True(t, ok, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestSniffCurrencyTableOrderBreaksTies(t *testing.T) {
	// Both markers present: the first table entry wins, regardless of
	// position in the text.
	got, ok := SniffCurrency("prices in usd, symbol €")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got)
}

func TestSniffCurrencyNoMatch(t *testing.T) {
	_, ok := SniffCurrency("no markers anywhere")
	assert.False(t, ok)

	_, ok = SniffCurrency("   ")
	assert.False(t, ok)
}

func TestSniffCurrencyOrDefault(t *testing.T) {
	assert.Equal(t, "EUR", SniffCurrencyOrDefault("nothing here"))
	assert.Equal(t, "USD", SniffCurrencyOrDefault("$ 5.00"))
}
