// Package validation sequences the per-URL checks and the aggregate gate that
// decides whether a batch of candidate links may seed editorial drafting.
package validation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"

	"EditorialGate/internal/domain"
	"EditorialGate/internal/page"
	"EditorialGate/internal/ports"
)

// Date policies: which resolved dates must equal today for a URL to pass.
const (
	DatePolicyMeta           = "meta"
	DatePolicyMetaAndVisible = "metaAndVisible"
)

// Config parameterizes the per-URL stage sequence.
type Config struct {
	AllowedDomains     []string
	DatePolicy         string
	MinWords           int
	MaxArchiveAgeHours int
}

// Validator runs each candidate URL through the fixed stage order, rejecting
// on the first failing stage.
type Validator struct {
	fetcher    ports.PageFetcher
	archive    ports.ArchiveIndex
	clock      domain.RunClock
	allowed    map[string]struct{}
	datePolicy string
	minWords   int
	maxAge     int
	logger     *slog.Logger
}

// New builds a validator over the given collaborators and run clock.
func New(fetcher ports.PageFetcher, archive ports.ArchiveIndex, clock domain.RunClock, cfg Config, log *slog.Logger) *Validator {
	allowed := make(map[string]struct{}, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		allowed[d] = struct{}{}
	}

	policy := cfg.DatePolicy
	if policy == "" {
		policy = DatePolicyMetaAndVisible
	}

	return &Validator{
		fetcher:    fetcher,
		archive:    archive,
		clock:      clock,
		allowed:    allowed,
		datePolicy: policy,
		minWords:   cfg.MinWords,
		maxAge:     cfg.MaxArchiveAgeHours,
		logger:     log,
	}
}

// Validate runs one URL through the stage sequence. Expected rejections come
// back as tagged outcomes, never as errors; an unexpected stage error is
// recorded verbatim as the rejection reason so one bad URL cannot sink the batch.
func (v *Validator) Validate(ctx context.Context, rawURL string) domain.Outcome {
	host := domain.Host(rawURL)
	if _, ok := v.allowed[host]; !ok {
		return reject(rawURL, domain.ReasonDomainNotAllowed)
	}

	html, err := v.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if errors.Is(err, domain.ErrHTTPFail) {
			return reject(rawURL, domain.ReasonHTTPFail)
		}
		return reject(rawURL, domain.RejectReason(err.Error()))
	}

	if page.IsSoft404(html) {
		return reject(rawURL, domain.ReasonSoft404)
	}

	text := page.RawText(html)
	if page.WordCount(text) < v.minWords {
		return reject(rawURL, domain.ReasonTooShort)
	}

	dateline := page.VisibleDate(text)
	if !v.publishedToday(dateline, page.MetaPublishTime(html)) {
		return reject(rawURL, domain.ReasonNotToday)
	}

	if v.archiveAgeHours(ctx, rawURL) > v.maxAge {
		return reject(rawURL, domain.ReasonArchiveOld)
	}

	sum := sha256.Sum256([]byte(html))
	return domain.Outcome{
		URL: rawURL,
		Link: &domain.ValidatedLink{
			URL:         rawURL,
			Domain:      host,
			Dateline:    dateline,
			ContentHash: hex.EncodeToString(sum[:]),
			Fingerprint: page.Fingerprint(page.ReadableText(html)),
		},
	}
}

// ValidateAll processes every URL independently; outcomes carry no ordering
// constraints and one rejection never aborts the rest of the batch.
func (v *Validator) ValidateAll(ctx context.Context, urls []string) []domain.Outcome {
	outcomes := make([]domain.Outcome, 0, len(urls))
	for _, u := range urls {
		outcome := v.Validate(ctx, u)
		if outcome.Validated() {
			v.info("url validated", "url", u, "fingerprint", outcome.Link.Fingerprint)
		} else {
			v.info("url rejected", "url", u, "reason", outcome.Reason)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// publishedToday applies the configured date policy. A parse failure on a
// required date means "not today", never "pass by default".
func (v *Validator) publishedToday(visible, meta string) bool {
	today := v.clock.Today()

	metaDate, ok := page.ToLocalDate(meta, v.clock.Location)
	if !ok || !metaDate.Equal(today) {
		return false
	}

	if v.datePolicy == DatePolicyMetaAndVisible {
		visDate, ok := page.ToLocalDate(visible, v.clock.Location)
		if !ok || !visDate.Equal(today) {
			return false
		}
	}

	return true
}

// archiveAgeHours degrades to zero on any index failure: a missing snapshot
// proves "not yet observed", not staleness.
func (v *Validator) archiveAgeHours(ctx context.Context, rawURL string) int {
	if v.archive == nil {
		return 0
	}

	captured, err := v.archive.EarliestCapture(ctx, rawURL)
	if err != nil {
		v.debug("archive lookup failed, treating as fresh", "url", rawURL, "error", err)
		return 0
	}

	age := v.clock.Now.Sub(captured.In(v.clock.Location))
	if age < 0 {
		return 0
	}
	return int(age.Hours())
}

func reject(url string, reason domain.RejectReason) domain.Outcome {
	return domain.Outcome{URL: url, Reason: reason}
}

func (v *Validator) info(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Info(msg, args...)
	}
}

func (v *Validator) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}
