package constants

// MeasurementTokens holds unit and packaging abbreviations that appear on
// their own line between a product name and its price.
var MeasurementTokens = []string{
	"g", "kg", "mg", "l", "ml", "lt", "cl", "oz", "lb",
	"pcs", "pc", "stk", "stück", "ud", "uds", "pz", "pz.", "шт", "szt", "pzla",
}

// SummaryKeywords marks lines belonging to a receipt's footer or summary
// region (totals, taxes, payment, terminal data) in the languages we commonly
// see. Hitting one of these while scanning backwards for a description means
// the item block is already behind us.
var SummaryKeywords = []string{
	"summe", "gesamt", "total", "totale", "totales", "totaux", "subtotal", "importe",
	"sumatoria", "suma", "somme", "合計", "合計金額", "totaal", "toplam",
	"datum", "fecha", "date", "data", "datahora", "hora", "uhrzeit", "tijd", "heure",
	"receipt", "ticket", "beleg", "factura", "nota", "bon", "kvitto", "recibo",
	"betaling", "zahlung", "pago", "pagamento", "paiement", "оплата",
	"tax", "steuer", "iva", "tva", "impuesto", "alv", "pps",
	"terminal", "pos", "trace", "transak", "transacción", "transaktion",
	"card", "debit", "credit", "mastercard", "visa", "amex",
	"signature", "firma", "signatur", "sign", "uid", "nif", "cif", "rfc", "gst",
	"cashier", "kasse", "caja", "caisse", "market", "store", "shop", "branch",
}
