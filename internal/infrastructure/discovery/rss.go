package discovery

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"EditorialGate/internal/domain"
	"EditorialGate/internal/page"
	"EditorialGate/internal/ports"
)

const (
	defaultMaxLinks = 10
	feedTimeout     = 10 * time.Second
)

// Source discovers today's candidate links from a fixed list of RSS feeds.
type Source struct {
	feeds    []string
	maxLinks int
	client   *http.Client
	logger   *slog.Logger
}

var _ ports.URLSource = (*Source)(nil)

// NewSource wires the feed list; maxLinks defaults to 10.
func NewSource(feeds []string, maxLinks int, client *http.Client, log *slog.Logger) *Source {
	if maxLinks <= 0 {
		maxLinks = defaultMaxLinks
	}
	if client == nil {
		client = &http.Client{Timeout: feedTimeout}
	}
	return &Source{feeds: feeds, maxLinks: maxLinks, client: client, logger: log}
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

// TodayLinks walks each feed in order, keeping items published today in the
// run timezone, until the link cap is reached. Discovery is best-effort: a
// broken feed is logged and skipped, never fatal.
func (s *Source) TodayLinks(ctx context.Context, clock domain.RunClock) ([]string, error) {
	today := clock.Today()
	seen := map[string]struct{}{}
	var out []string

	for _, feed := range s.feeds {
		links, err := s.fromFeed(ctx, feed, today, clock.Location)
		if err != nil {
			s.warn("feed fetch failed", "feed", feed, "error", err)
			continue
		}
		s.debug("feed scanned", "feed", feed, "links", len(links))

		for _, link := range links {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			out = append(out, link)
		}
		if len(out) >= s.maxLinks {
			break
		}
	}

	if len(out) > s.maxLinks {
		out = out[:s.maxLinks]
	}
	return out, nil
}

func (s *Source) fromFeed(ctx context.Context, feedURL string, today time.Time, loc *time.Location) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	var doc rssDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var links []string
	for _, item := range doc.Channel.Items {
		published, ok := page.ToLocalDate(item.PubDate, loc)
		if !ok || !published.Equal(today) {
			continue
		}
		if link := strings.TrimSpace(item.Link); link != "" {
			links = append(links, link)
		}
	}
	return links, nil
}

func (s *Source) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Source) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
