// Package client talks to the summarizer API: it uploads videos and
// retrieves analytics reports.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

// Fetcher retrieves analytics reports by video ID.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher creates a Fetcher for the given API base URL. A nil
// httpClient falls back to http.DefaultClient.
func NewFetcher(baseURL string, httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

// ParseVideoID validates a user-entered video ID. It returns
// ErrInvalidIdentifier for empty, non-numeric, or non-positive input.
func ParseVideoID(id string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidIdentifier
	}
	return n, nil
}

// Fetch retrieves the report for the given ID. Validation happens
// before any network call. The request disables caching so a re-fetch
// always observes the latest pipeline output.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*report.Report, error) {
	n, err := ParseVideoID(id)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/analytics/%d", f.baseURL, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	log.Debug().Int64("video_id", n).Msg("fetching analytics")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var r report.Report
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	return &r, nil
}
