package openelevation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// API Docs: https://open-elevation.com/#api-docs
// Sample request: POST https://api.open-elevation.com/api/v1/lookup
// with body {"locations":[{"latitude":39.1178,"longitude":-106.4452}]}
const (
	DefaultBaseURL   = "https://api.open-elevation.com/api/v1/lookup"
	DefaultBatchSize = 100

	defaultTimeout = 30 * time.Second
)

// UpstreamError reports a failed batch request. Start and End are the
// half-open index range of the submitted locations the batch covered, so the
// caller can report which records were implicated. No results are returned
// for a run that produced an UpstreamError.
type UpstreamError struct {
	Start int
	End   int
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("elevation lookup failed for locations [%d, %d): %v", e.Start, e.End, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient builds a lookup client. An empty baseURL selects the public
// Open-Elevation endpoint; a zero timeout selects the default per-batch
// timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "openelevation-client"),
	}
}

// Lookup fetches elevations for the given locations, splitting them into
// consecutive batches of at most batchSize and issuing one POST per batch.
// Batches run sequentially and the reassembled results keep the input order:
// result[i] corresponds to locations[i] for every i. Any batch failure,
// including a response whose result count does not match the batch, aborts
// the whole lookup with an UpstreamError; a partial result would silently
// misalign every record after the failed batch.
func (c *Client) Lookup(ctx context.Context, locations []Location, batchSize int) ([]LookupResult, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	results := make([]LookupResult, 0, len(locations))
	for start := 0; start < len(locations); start += batchSize {
		end := start + batchSize
		if end > len(locations) {
			end = len(locations)
		}

		batch, err := c.lookupBatch(ctx, locations[start:end])
		if err != nil {
			c.logger.Error("elevation batch failed",
				"start", start,
				"end", end,
				"error", err,
			)
			return nil, &UpstreamError{Start: start, End: end, Err: err}
		}

		results = append(results, batch...)
	}

	c.logger.Debug("elevation lookup complete",
		"locations", len(locations),
		"batch_size", batchSize,
	)

	return results, nil
}

func (c *Client) lookupBatch(ctx context.Context, locations []Location) ([]LookupResult, error) {
	body, err := json.Marshal(LookupRequest{Locations: locations})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("posting elevation batch", "url", c.baseURL, "locations", len(locations))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Results) != len(locations) {
		return nil, fmt.Errorf("response has %d results for %d locations", len(apiResp.Results), len(locations))
	}

	return apiResp.Results, nil
}
