package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/invoiceeasy/analyzer/internal/extract"
)

func TestExportXLSX(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("5.90")
	price := decimal.RequireFromString("2.80")

	result := &extract.AnalysisResult{
		VendorName:   "Corner Cafe",
		InvoiceDate:  &date,
		TotalAmount:  &total,
		CurrencyCode: "EUR",
		Items: []extract.LineItem{
			{Description: "Espresso", TotalPrice: &price},
			{Description: "Croissant\n2 x 450g"},
		},
	}

	svc := NewService(nil)
	data, err := svc.ExportXLSX(result)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Analysis"
	vendor, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", vendor)

	dateCell, _ := f.GetCellValue(sheet, "B4")
	assert.Equal(t, "2025-03-14", dateCell)

	totalCell, _ := f.GetCellValue(sheet, "B5")
	assert.Equal(t, "5.90", totalCell)

	// item table starts after the summary block and header row
	desc, _ := f.GetCellValue(sheet, "A9")
	assert.Equal(t, "Espresso", desc)
	priceCell, _ := f.GetCellValue(sheet, "D9")
	assert.Equal(t, "2.80", priceCell)

	// embedded newlines are flattened for the sheet
	desc2, _ := f.GetCellValue(sheet, "A10")
	assert.Equal(t, "Croissant 2 x 450g", desc2)
}

func TestExportXLSXNilResult(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.ExportXLSX(nil)
	assert.Error(t, err)
}
