package extract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisResult is the normalized record produced for one document. Every
// field is independently optional; Notes defaults to the empty string, never
// nil. A result full of unset fields means the analysis yielded partial data,
// not that anything failed.
type AnalysisResult struct {
	VendorName    string            `json:"vendor_name,omitempty"`
	CustomerName  string            `json:"customer_name,omitempty"`
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time        `json:"invoice_date,omitempty"` // UTC
	TotalAmount   *decimal.Decimal  `json:"total_amount,omitempty"`
	CurrencyCode  string            `json:"currency_code,omitempty"`
	Notes         string            `json:"notes"`
	Items         []LineItem        `json:"items,omitempty"`
	RawFields     map[string]string `json:"raw_fields,omitempty"`
}

// LineItem is one purchased line. An item is only retained when at least one
// of its fields carries a value.
type LineItem struct {
	Description string           `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
}

// isEmpty reports whether the item carries no information at all.
func (li LineItem) isEmpty() bool {
	return strings.TrimSpace(li.Description) == "" &&
		li.Quantity == nil && li.UnitPrice == nil && li.TotalPrice == nil
}
