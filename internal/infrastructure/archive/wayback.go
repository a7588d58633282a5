package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"EditorialGate/internal/ports"
)

const (
	defaultEndpoint = "https://web.archive.org/cdx/search/cdx"
	lookupTimeout   = 4 * time.Second
	captureLayout   = "20060102150405"
)

// Client queries a Wayback-style CDX index for the earliest kept capture of a
// URL. Callers decide what a lookup failure means; the client only reports it.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

var _ ports.ArchiveIndex = (*Client)(nil)

// New builds a CDX client; an empty endpoint falls back to web.archive.org.
func New(endpoint string, log *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: lookupTimeout},
		logger:   log,
	}
}

// EarliestCapture returns the UTC timestamp of the first 200-status snapshot
// recorded for the exact URL.
func (c *Client) EarliestCapture(ctx context.Context, pageURL string) (time.Time, error) {
	query := url.Values{}
	query.Set("url", pageURL)
	query.Set("output", "json")
	query.Set("limit", "1")
	query.Set("filter", "statuscode:200")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("query cdx index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("cdx returned %s", resp.Status)
	}

	// CDX json output is a header row followed by capture rows; field 1 of a
	// capture row is the YYYYMMDDhhmmss timestamp.
	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return time.Time{}, fmt.Errorf("decode cdx response: %w", err)
	}
	if len(rows) < 2 || len(rows[1]) < 2 {
		return time.Time{}, errors.New("no snapshot recorded")
	}

	captured, err := time.ParseInLocation(captureLayout, rows[1][1], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse capture timestamp %q: %w", rows[1][1], err)
	}

	return captured, nil
}
