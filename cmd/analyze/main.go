package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/invoiceeasy/analyzer/internal/common"
	"github.com/invoiceeasy/analyzer/internal/docintel"
	"github.com/invoiceeasy/analyzer/internal/export"
	"github.com/invoiceeasy/analyzer/internal/extract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	var (
		filePath   = flag.String("file", "", "document to analyze (pdf/jpg/jpeg/png)")
		resultPath = flag.String("result", "", "replay a saved analyze-result JSON instead of calling the service")
		modelID    = flag.String("model", "", "model id override (default from DOCINTEL_MODEL_ID)")
		xlsxPath   = flag.String("xlsx", "", "also write the result as an XLSX workbook")
	)
	flag.Parse()

	if (*filePath == "") == (*resultPath == "") {
		logger.Error("usage", "cmd", "analyze -file <doc> | -result <analyze-result.json> [-model id] [-xlsx out.xlsx]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	model := *modelID
	if model == "" {
		model = cfg.DocIntel.ModelID
	}

	var (
		result *extract.AnalysisResult
		err    error
	)
	if *resultPath != "" {
		result, err = replaySaved(*resultPath, model)
	} else {
		result, err = analyzeFile(cfg, logger, *filePath, model)
	}
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if *xlsxPath != "" {
		svc := export.NewService(logger)
		data, err := svc.ExportXLSX(result)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			logger.Error("write xlsx", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		logger.Info("xlsx written", "path", *xlsxPath)
	}
}

// replaySaved runs the pure engine over a previously saved analyze result.
func replaySaved(path, model string) (*extract.AnalysisResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read saved result: %w", err)
	}
	if err := docintel.ValidateAnalyzeResult(raw); err != nil {
		return nil, err
	}
	var analyzed docintel.AnalyzeResult
	if err := json.Unmarshal(raw, &analyzed); err != nil {
		return nil, fmt.Errorf("decode saved result: %w", err)
	}
	if analyzed.ModelID != "" {
		model = analyzed.ModelID
	}
	return extract.BuildResult(&analyzed, extract.ProfileForModel(model)), nil
}

// analyzeFile runs one document end to end through the configured service.
func analyzeFile(cfg *common.Config, logger *slog.Logger, path, model string) (*extract.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("close document", "path", path, "error", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DocIntel.Timeout)
	defer cancel()

	client := docintel.NewClient(cfg.DocIntel, logger)
	analyzer := extract.NewAnalyzer(client, model, logger)
	return analyzer.Analyze(ctx, f, path)
}
