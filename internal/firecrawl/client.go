// Package firecrawl is a thin client for the Firecrawl extraction API.
// Each call ships a set of URLs, a natural-language extraction prompt and
// a JSON schema describing the expected result shape, and gets back a
// loosely-typed data record. Typed decoding happens in the caller's
// translation layer, not here.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoData means the API answered but had nothing useful: success=false
// or an empty data payload. Callers treat it as "no data from this site".
var ErrNoData = errors.New("firecrawl: no data extracted")

const defaultTimeout = 120 * time.Second

// Client calls the Firecrawl /v1/extract endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client for the given API base URL and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type extractRequest struct {
	URLs   []string       `json:"urls"`
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema,omitempty"`
}

type extractResponse struct {
	Success   bool           `json:"success"`
	Data      map[string]any `json:"data"`
	Status    string         `json:"status,omitempty"`
	ExpiresAt string         `json:"expiresAt,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Extract runs one structured extraction over the given URLs. There are
// no retries: a failed call is the caller's signal to skip this source.
func (c *Client) Extract(ctx context.Context, urls []string, prompt string, schema map[string]any) (map[string]any, error) {
	body, err := json.Marshal(extractRequest{URLs: urls, Prompt: prompt, Schema: schema})
	if err != nil {
		return nil, fmt.Errorf("firecrawl: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("firecrawl: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("firecrawl: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("firecrawl: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("firecrawl: unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var decoded extractResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("firecrawl: decode response: %w", err)
	}

	if !decoded.Success || len(decoded.Data) == 0 {
		if decoded.Error != "" {
			return nil, fmt.Errorf("firecrawl: %s: %w", decoded.Error, ErrNoData)
		}
		return nil, ErrNoData
	}

	return decoded.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
