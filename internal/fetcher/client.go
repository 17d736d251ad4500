// Package fetcher retrieves record collections from the alphabetter API.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"alphabetter/internal/logger"
)

// Client performs GET requests against the API root in its Config.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// New creates a client. The http.Client timeout comes from cfg.Timeout.
func New(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Get issues one GET to path, expects a JSON object and decodes the array
// stored under field into dst. Every failure is returned as *FetchError.
func (c *Client) Get(ctx context.Context, path, field string, dst any) error {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	reqID := uuid.NewString()

	fail := func(status int, err error) error {
		fe := &FetchError{Endpoint: url, RequestID: reqID, Status: status, Err: err}
		logger.Warn("There was an error fetching the data: %v (request_id=%s)", fe, reqID)
		return fe
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-ID", reqID)

	logger.Debug("GET %s (request_id=%s)", url, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(resp.StatusCode, fmt.Errorf("unexpected status, body=%s", strings.TrimSpace(string(body))))
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}

	raw, ok := envelope[field]
	if !ok || string(raw) == "null" {
		return fail(resp.StatusCode, fmt.Errorf("response has no %q array", field))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding %q: %w", field, err))
	}

	return nil
}

// IsFetchError reports whether err is (or wraps) a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
