package docintel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceeasy/analyzer/internal/common"
)

// Client talks to the external document-understanding service over its
// long-running-operation REST API: submit the document, follow the operation
// URL, poll until the analysis settles.
type Client struct {
	endpoint     string
	apiKey       string
	apiVersion   string
	http         *http.Client
	pollInterval time.Duration
	maxPolls     int
	logger       *slog.Logger
}

func NewClient(cfg common.DocIntelConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-11-30"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 60
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		endpoint:     cfg.Endpoint,
		apiKey:       cfg.APIKey,
		apiVersion:   cfg.APIVersion,
		http:         &http.Client{Timeout: timeout},
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		logger:       logger,
	}
}

// Analyze submits document bytes to the given model and blocks until the
// operation settles. Any transport, service, or decode failure comes back
// wrapped as an upstream-analysis fault.
func (c *Client) Analyze(ctx context.Context, modelID string, data []byte) (*AnalyzeResult, error) {
	if c.endpoint == "" || c.apiKey == "" {
		return nil, common.ErrNotConfigured
	}
	if len(data) == 0 {
		return nil, common.ErrEmptyDocument
	}

	reqID := uuid.New().String()
	start := time.Now()

	opURL, err := c.submit(ctx, reqID, modelID, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstreamAnalysis, err)
	}

	result, err := c.poll(ctx, reqID, opURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstreamAnalysis, err)
	}

	c.logger.Info("docintel.analyze.ok",
		"req_id", reqID,
		"model_id", modelID,
		"pages", len(result.Pages),
		"documents", len(result.Documents),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (c *Client) submit(ctx context.Context, reqID, modelID string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		c.endpoint, modelID, c.apiVersion)

	body, err := json.Marshal(map[string]string{
		"base64Source": base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	c.logger.Info("docintel.request",
		"req_id", reqID,
		"model_id", modelID,
		"content_length", len(data),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("docintel.send_error", "req_id", reqID, "error", err)
		return "", err
	}
	defer c.closeBody(reqID, resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusAccepted && resp.StatusCode/100 != 2 {
		c.logger.Error("docintel.submit_rejected",
			"req_id", reqID, "status", resp.StatusCode, "bytes", len(raw))
		return "", fmt.Errorf("submit rejected with status %d", resp.StatusCode)
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("missing Operation-Location header")
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, reqID, opURL string) (*AnalyzeResult, error) {
	for attempt := 0; attempt < c.maxPolls; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pollInterval):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build poll request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		raw, readErr := io.ReadAll(resp.Body)
		c.closeBody(reqID, resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("read poll response: %w", readErr)
		}
		if resp.StatusCode/100 != 2 {
			return nil, fmt.Errorf("poll failed with status %d", resp.StatusCode)
		}

		var op operation
		if err := json.Unmarshal(raw, &op); err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}

		c.logger.Debug("docintel.poll", "req_id", reqID, "attempt", attempt, "status", op.Status)

		switch op.Status {
		case "succeeded":
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("operation succeeded without a result")
			}
			// Re-validate just the analyzeResult portion of the payload.
			resultRaw, err := json.Marshal(op.AnalyzeResult)
			if err != nil {
				return nil, fmt.Errorf("re-encode analyze result: %w", err)
			}
			if err := ValidateAnalyzeResult(resultRaw); err != nil {
				return nil, err
			}
			return op.AnalyzeResult, nil
		case "failed":
			if op.Error != nil {
				return nil, fmt.Errorf("operation failed: %s: %s", op.Error.Code, op.Error.Message)
			}
			return nil, fmt.Errorf("operation failed")
		default:
			// notStarted / running: keep polling.
		}
	}
	return nil, fmt.Errorf("operation did not settle after %d polls", c.maxPolls)
}

func (c *Client) closeBody(reqID string, body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Warn("docintel.response_body_close_error", "req_id", reqID, "error", err)
	}
}
