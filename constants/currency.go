package constants

// CurrencyToken maps a symbol, ISO abbreviation, or colloquial token found in
// document text to its ISO 4217 code.
type CurrencyToken struct {
	Token string
	Code  string
}

// CurrencyTokens is scanned in declaration order; the first token contained in
// the text wins. Keep broad tokens ("kr") after the currencies they could
// shadow if you reorder.
var CurrencyTokens = []CurrencyToken{
	{"€", "EUR"},
	{"eur", "EUR"},
	{"usd", "USD"},
	{"$", "USD"},
	{"cad", "CAD"},
	{"aud", "AUD"},
	{"gbp", "GBP"},
	{"£", "GBP"},
	{"chf", "CHF"},
	{"¥", "JPY"},
	{"jpy", "JPY"},
	{"cny", "CNY"},
	{"₽", "RUB"},
	{"rub", "RUB"},
	{"₹", "INR"},
	{"inr", "INR"},
	{"kr", "SEK"},
	{"sek", "SEK"},
	{"nok", "NOK"},
	{"dkk", "DKK"},
	{"zł", "PLN"},
	{"pln", "PLN"},
	{"₺", "TRY"},
	{"try", "TRY"},
}

// DefaultCurrencyCode is returned when a caller asks for a fallback and no
// token matched.
const DefaultCurrencyCode = "EUR"

// CurrencyOnlyTokens holds lines that consist of nothing but a currency
// marker; such lines carry no item information on their own.
var CurrencyOnlyTokens = map[string]struct{}{
	"eur": {},
	"usd": {},
	"gbp": {},
	"cad": {},
	"chf": {},
	"jpy": {},
	"¥":   {},
	"€":   {},
	"$":   {},
}
