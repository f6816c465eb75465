package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoiceeasy/analyzer/internal/extract"
)

// Service renders an AnalysisResult as an XLSX workbook: a summary block for
// the document-level fields followed by one row per line item.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns the workbook bytes for one analysis result.
func (s *Service) ExportXLSX(result *extract.AnalysisResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nil analysis result")
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Analysis"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Summary block.
	summary := [][2]string{
		{"Vendor", result.VendorName},
		{"Customer", result.CustomerName},
		{"Invoice Number", result.InvoiceNumber},
		{"Invoice Date", formatDate(result)},
		{"Total", formatTotal(result)},
		{"Currency", result.CurrencyCode},
	}
	row := 1
	for _, pair := range summary {
		write(1, row, pair[0])
		write(2, row, pair[1])
		row++
	}
	row++

	// Item table.
	headers := []string{"Description", "Quantity", "Unit Price", "Total Price"}
	for i, h := range headers {
		write(i+1, row, h)
	}
	row++

	for _, item := range result.Items {
		write(1, row, truncate(strings.ReplaceAll(item.Description, "\n", " "), 140))
		if item.Quantity != nil {
			write(2, row, item.Quantity.String())
		}
		if item.UnitPrice != nil {
			write(3, row, item.UnitPrice.String())
		}
		if item.TotalPrice != nil {
			write(4, row, item.TotalPrice.String())
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // description
	_ = f.SetColWidth(sheet, "B", "D", 14) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"items", len(result.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatDate(result *extract.AnalysisResult) string {
	if result.InvoiceDate == nil {
		return ""
	}
	return result.InvoiceDate.Format("2006-01-02")
}

func formatTotal(result *extract.AnalysisResult) string {
	if result.TotalAmount == nil {
		return ""
	}
	return result.TotalAmount.StringFixed(2)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
