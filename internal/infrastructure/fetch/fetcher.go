package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"EditorialGate/internal/domain"
	"EditorialGate/internal/ports"
)

const (
	maxAttempts    = 2
	defaultTimeout = 8 * time.Second
	defaultBackoff = 800 * time.Millisecond
	userAgent      = "Mozilla/5.0"
)

// Fetcher retrieves raw pages under a tight retry budget. Redirects are not
// followed: a redirected URL is not trusted as today's canonical article
// location and counts as a failed attempt.
type Fetcher struct {
	client  *http.Client
	backoff time.Duration
	logger  *slog.Logger
}

var _ ports.PageFetcher = (*Fetcher)(nil)

// New wires an HTTP client; a nil client gets the default timeout. The client
// is copied so redirect suppression never leaks to the caller.
func New(client *http.Client, log *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	bounded := *client
	bounded.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Fetcher{client: &bounded, backoff: defaultBackoff, logger: log}
}

// Fetch returns the page body after a direct 200, or domain.ErrHTTPFail once
// the attempt budget is spent.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.backoff):
			}
		}

		body, err := f.try(ctx, pageURL)
		if err == nil {
			return body, nil
		}
		f.debug("fetch attempt failed", "url", pageURL, "attempt", attempt, "error", err)
	}

	return "", domain.ErrHTTPFail
}

func (f *Fetcher) try(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(raw), nil
}

func (f *Fetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
