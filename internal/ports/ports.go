package ports

import (
	"context"
	"time"

	"EditorialGate/internal/domain"
)

// URLSource discovers today's candidate article links.
type URLSource interface {
	TodayLinks(ctx context.Context, clock domain.RunClock) ([]string, error)
}

// PageFetcher retrieves the raw markup behind a candidate URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ArchiveIndex answers when a URL was first captured by the web archive.
type ArchiveIndex interface {
	EarliestCapture(ctx context.Context, url string) (time.Time, error)
}

// Drafter turns the validated link set into the editorial text artifact.
type Drafter interface {
	Draft(ctx context.Context, clock domain.RunClock, links []domain.ValidatedLink) (string, error)
}
