package extract

// FieldProfile lists, per logical slot, the field names to try in order.
// The receipt and invoice model flavors share every algorithm and differ
// only in these lookup tables.
type FieldProfile struct {
	Vendor   []string
	Customer []string
	Number   []string
	Date     []string
	Total    []string
	Items    []string

	ItemDescription []string
	ItemQuantity    []string
	ItemUnitPrice   []string
	ItemTotal       []string
}

// InvoiceProfile matches the field names of the prebuilt invoice model,
// falling back to their receipt-flavored counterparts.
var InvoiceProfile = FieldProfile{
	Vendor:   []string{"VendorName", "MerchantName"},
	Customer: []string{"CustomerName"},
	Number:   []string{"InvoiceId"},
	Date:     []string{"InvoiceDate", "TransactionDate"},
	Total:    []string{"InvoiceTotal", "Total"},
	Items:    []string{"Items"},

	ItemDescription: []string{"Description"},
	ItemQuantity:    []string{"Quantity", "Weight"},
	ItemUnitPrice:   []string{"UnitPrice", "Price"},
	ItemTotal:       []string{"TotalPrice", "Amount", "Subtotal"},
}

// ReceiptProfile is the same table with receipt-first ordering.
var ReceiptProfile = FieldProfile{
	Vendor:   []string{"MerchantName", "VendorName"},
	Customer: []string{"CustomerName"},
	Number:   []string{"ReceiptNumber", "InvoiceId"},
	Date:     []string{"TransactionDate", "InvoiceDate"},
	Total:    []string{"Total", "InvoiceTotal"},
	Items:    []string{"Items"},

	ItemDescription: []string{"Description"},
	ItemQuantity:    []string{"Quantity", "Weight"},
	ItemUnitPrice:   []string{"UnitPrice", "Price"},
	ItemTotal:       []string{"TotalPrice", "Amount", "Subtotal"},
}

// ProfileForModel picks the alias table for a document-analysis model id.
func ProfileForModel(modelID string) FieldProfile {
	if modelID == "prebuilt-invoice" {
		return InvoiceProfile
	}
	return ReceiptProfile
}
