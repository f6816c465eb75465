package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/invoiceeasy/analyzer/constants"
	"github.com/invoiceeasy/analyzer/internal/common"
	"github.com/invoiceeasy/analyzer/internal/docintel"
)

// DocumentClient is the external document-understanding capability the
// engine consumes; it may be slow and is awaited without any engine-side
// state. Cancellation is the caller's concern via ctx.
type DocumentClient interface {
	Analyze(ctx context.Context, modelID string, data []byte) (*docintel.AnalyzeResult, error)
}

// Analyzer turns one uploaded document into a normalized AnalysisResult.
// It is stateless between invocations; the only shared data are the
// process-wide lookup tables, which are read-only.
type Analyzer struct {
	client  DocumentClient
	modelID string
	logger  *slog.Logger
}

func NewAnalyzer(client DocumentClient, modelID string, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if modelID == "" {
		modelID = "prebuilt-receipt"
	}
	return &Analyzer{client: client, modelID: modelID, logger: logger}
}

// Analyze validates the input, runs the upstream analysis call, and builds
// the normalized result. The only errors it returns are input-validation
// faults and upstream-service faults; everything the extraction itself
// cannot determine simply stays unset in the result.
func (a *Analyzer) Analyze(ctx context.Context, r io.Reader, fileName string) (*AnalysisResult, error) {
	if a.client == nil {
		return nil, common.ErrNotConfigured
	}
	if ext := filepath.Ext(fileName); !constants.IsSupportedExt(ext) {
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFileType, ext)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, common.WrapError(err, "read document")
	}
	if len(data) == 0 {
		return nil, common.ErrEmptyDocument
	}

	start := time.Now()
	analyzed, err := a.client.Analyze(ctx, a.modelID, data)
	if err != nil {
		return nil, err
	}

	result := BuildResult(analyzed, ProfileForModel(a.modelID))

	a.logger.Info("extract.analyze.ok",
		"file", fileName,
		"model_id", a.modelID,
		"items", len(result.Items),
		"has_total", result.TotalAmount != nil,
		"has_date", result.InvoiceDate != nil,
		"currency", result.CurrencyCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// BuildResult runs the extraction pipeline over an analyze result. It is a
// pure function of its input: structured fields first, then geometry and
// raw-text item reconstruction for gaps, then full-text scans for whatever
// is still missing. No step ever fails; absence advances to the next
// fallback.
func BuildResult(analyzed *docintel.AnalyzeResult, profile FieldProfile) *AnalysisResult {
	result := &AnalysisResult{RawFields: make(map[string]string)}
	if analyzed == nil {
		return result
	}

	if len(analyzed.Documents) > 0 {
		mapFields(analyzed.Documents[0], profile, result)
	}

	content := analyzed.Content
	result.Notes = content

	hasPages := len(analyzed.Pages) > 0
	if hasPages || strings.TrimSpace(content) != "" {
		if len(result.Items) == 0 {
			mergeFallbackItems(result, analyzed.Pages, content)
		}
		if result.CurrencyCode == "" {
			if code, ok := SniffCurrency(content); ok {
				result.CurrencyCode = code
			}
		}
	}

	if result.TotalAmount == nil && strings.TrimSpace(content) != "" {
		if a, ok := largestAmount(content); ok {
			result.TotalAmount = &a.value
			adoptCurrency(result, a.currency)
		}
	}

	if result.InvoiceDate == nil && strings.TrimSpace(content) != "" {
		if t, ok := firstDateInText(content); ok {
			result.InvoiceDate = &t
		}
	}

	if result.TotalAmount != nil {
		rounded := result.TotalAmount.Round(2)
		result.TotalAmount = &rounded
	}
	return result
}

// mergeFallbackItems reconstructs items from geometry, falling back to raw
// text, and merges them into the result with normalized-description dedup.
// An item whose normalized description already exists is dropped, not
// merged.
func mergeFallbackItems(result *AnalysisResult, pages []docintel.Page, content string) {
	fallback := itemsFromPages(pages)
	if len(fallback) == 0 && strings.TrimSpace(content) != "" {
		fallback = itemsFromRawText(content)
	}
	if len(fallback) == 0 {
		return
	}

	existing := make(map[string]bool)
	for _, item := range result.Items {
		if strings.TrimSpace(item.Description) != "" {
			existing[normalizeDescription(item.Description)] = true
		}
	}

	for _, item := range fallback {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		normalized := normalizeDescription(item.Description)
		if existing[normalized] {
			continue
		}
		result.Items = append(result.Items, item)
		existing[normalized] = true
	}
}

// normalizeDescription collapses internal whitespace and lowercases, the
// comparison key for dedup.
func normalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRE.ReplaceAllString(description, " ")))
}
