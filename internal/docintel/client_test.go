package docintel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceeasy/analyzer/internal/common"
)

func testConfig(endpoint string) common.DocIntelConfig {
	return common.DocIntelConfig{
		Endpoint:     endpoint,
		APIKey:       "test-key",
		PollInterval: time.Millisecond,
		MaxPolls:     10,
		Timeout:      5 * time.Second,
	}
}

func TestClientAnalyzeSubmitAndPoll(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()

	var serverURL string
	mux.HandleFunc("POST /documentintelligence/documentModels/prebuilt-receipt:analyze",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotEmpty(t, body["base64Source"])

			w.Header().Set("Operation-Location", serverURL+"/op/123")
			w.WriteHeader(http.StatusAccepted)
		})
	mux.HandleFunc("GET /op/123", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			_ = json.NewEncoder(w).Encode(operation{Status: "running"})
			return
		}
		_ = json.NewEncoder(w).Encode(operation{
			Status: "succeeded",
			AnalyzeResult: &AnalyzeResult{
				ModelID: "prebuilt-receipt",
				Content: "Corner Cafe\n2.80",
				Pages: []Page{{
					PageNumber: 1,
					Lines:      []Line{{Content: "2.80", Polygon: []float64{1, 1, 2, 1, 2, 2, 1, 2}}},
				}},
			},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	serverURL = srv.URL

	client := NewClient(testConfig(srv.URL), nil)
	result, err := client.Analyze(context.Background(), "prebuilt-receipt", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe\n2.80", result.Content)
	require.Len(t, result.Pages, 1)
	assert.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestClientAnalyzeOperationFailed(t *testing.T) {
	mux := http.NewServeMux()
	var serverURL string
	mux.HandleFunc("POST /documentintelligence/documentModels/prebuilt-receipt:analyze",
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Operation-Location", serverURL+"/op/err")
			w.WriteHeader(http.StatusAccepted)
		})
	mux.HandleFunc("GET /op/err", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(operation{
			Status: "failed",
			Error:  &OperationError{Code: "InvalidContent", Message: "unreadable"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	serverURL = srv.URL

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Analyze(context.Background(), "prebuilt-receipt", []byte("junk"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamAnalysis)
	assert.Contains(t, err.Error(), "InvalidContent")
}

func TestClientAnalyzeSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Analyze(context.Background(), "prebuilt-receipt", []byte("junk"))
	assert.ErrorIs(t, err, common.ErrUpstreamAnalysis)
}

func TestClientAnalyzeInputFaults(t *testing.T) {
	client := NewClient(common.DocIntelConfig{}, nil)
	_, err := client.Analyze(context.Background(), "prebuilt-receipt", []byte("data"))
	assert.ErrorIs(t, err, common.ErrNotConfigured)

	client = NewClient(testConfig("http://localhost:0"), nil)
	_, err = client.Analyze(context.Background(), "prebuilt-receipt", nil)
	assert.ErrorIs(t, err, common.ErrEmptyDocument)
}

func TestValidateAnalyzeResult(t *testing.T) {
	valid := []byte(`{"content": "text", "pages": [{"pageNumber": 1, "lines": [{"content": "a", "polygon": [1, 2]}]}]}`)
	assert.NoError(t, ValidateAnalyzeResult(valid))

	invalid := []byte(`{"content": 42}`)
	assert.Error(t, ValidateAnalyzeResult(invalid))

	assert.Error(t, ValidateAnalyzeResult([]byte("not json")))
}
