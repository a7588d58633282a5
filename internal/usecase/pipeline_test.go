package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"EditorialGate/internal/domain"
	"EditorialGate/internal/report"
	"EditorialGate/internal/validation"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func fixedClock() domain.RunClock {
	return domain.RunClock{
		Now:      time.Date(2025, time.May, 24, 12, 0, 0, 0, ist),
		Location: ist,
	}
}

type stubFetcher struct {
	pages map[string]string
}

func (s stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	html, ok := s.pages[url]
	if !ok {
		return "", domain.ErrHTTPFail
	}
	return html, nil
}

type stubArchive struct{}

func (stubArchive) EarliestCapture(context.Context, string) (time.Time, error) {
	return time.Time{}, errors.New("no snapshot recorded")
}

type stubDrafter struct {
	drafts int
}

func (d *stubDrafter) Draft(_ context.Context, _ domain.RunClock, links []domain.ValidatedLink) (string, error) {
	d.drafts++
	return fmt.Sprintf("sample editorial over %d sources", len(links)), nil
}

func passingPage(body string) string {
	return fmt.Sprintf(`<html><head><title>Daily Brief</title>
<meta property="article:published_time" content="2025-05-24T09:00:00+05:30">
</head><body>
<p>New Delhi, 24 May 2025</p>
<article><p>%s</p></article>
</body></html>`, strings.TrimSpace(strings.Repeat(body+" ", 300)))
}

func newTestPipeline(t *testing.T, pages map[string]string, drafter *stubDrafter) (*Pipeline, string) {
	t.Helper()

	clock := fixedClock()
	validator := validation.New(stubFetcher{pages: pages}, stubArchive{}, clock, validation.Config{
		AllowedDomains:     []string{"thehindu.com", "ndtv.com", "indiatoday.in"},
		DatePolicy:         validation.DatePolicyMetaAndVisible,
		MinWords:           250,
		MaxArchiveAgeHours: 48,
	}, nil)

	dir := t.TempDir()
	p := NewPipeline(PipelineDeps{
		Validator: validator,
		Gate:      validation.Gate{MinValidated: 3, MinFingerprints: 2},
		Drafter:   drafter,
		Reports:   report.NewWriter(dir),
		Clock:     clock,
	})
	return p, dir
}

func TestRunPassWritesAllArtifacts(t *testing.T) {
	t.Parallel()

	drafter := &stubDrafter{}
	p, dir := newTestPipeline(t, map[string]string{
		"https://thehindu.com/a":  passingPage("alpha"),
		"https://ndtv.com/b":      passingPage("beta"),
		"https://indiatoday.in/c": passingPage("gamma"),
	}, drafter)

	result, err := p.Run(context.Background(), []string{
		"https://thehindu.com/a", "https://ndtv.com/b", "https://indiatoday.in/c",
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Passed {
		t.Fatalf("expected pass, rejections: %v", result.Rejected)
	}
	if drafter.drafts != 1 {
		t.Fatalf("expected one draft call, got %d", drafter.drafts)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "run-summary.json"))
	if err != nil {
		t.Fatalf("read run-summary.json: %v", err)
	}
	var summary struct {
		StagePass bool                   `json:"stage_pass"`
		URLs      []domain.ValidatedLink `json:"urls"`
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("parse run-summary.json: %v", err)
	}
	if !summary.StagePass || len(summary.URLs) != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if _, err := os.Stat(filepath.Join(dir, "links.json")); err != nil {
		t.Fatalf("links.json missing: %v", err)
	}

	editorial, err := os.ReadFile(filepath.Join(dir, "editorial.txt"))
	if err != nil {
		t.Fatalf("editorial.txt missing: %v", err)
	}
	if string(editorial) != "sample editorial over 3 sources" {
		t.Fatalf("unexpected editorial: %q", editorial)
	}
}

func TestRunFailWritesSummaryOnly(t *testing.T) {
	t.Parallel()

	drafter := &stubDrafter{}
	p, dir := newTestPipeline(t, map[string]string{
		"https://thehindu.com/a": passingPage("alpha"),
	}, drafter)

	result, err := p.Run(context.Background(), []string{
		"https://thehindu.com/a", "https://ndtv.com/missing",
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Passed {
		t.Fatalf("expected gate failure")
	}
	if drafter.drafts != 0 {
		t.Fatalf("drafter must not run on a failed gate")
	}

	raw, err := os.ReadFile(filepath.Join(dir, "run-summary.json"))
	if err != nil {
		t.Fatalf("read run-summary.json: %v", err)
	}
	var summary struct {
		StagePass bool              `json:"stage_pass"`
		Errors    map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("parse run-summary.json: %v", err)
	}
	if summary.StagePass {
		t.Fatalf("expected stage_pass false")
	}
	if summary.Errors["https://ndtv.com/missing"] != "http_fail" {
		t.Fatalf("unexpected errors map: %v", summary.Errors)
	}

	if _, err := os.Stat(filepath.Join(dir, "links.json")); !os.IsNotExist(err) {
		t.Fatalf("links.json should not exist on failure")
	}
	if _, err := os.Stat(filepath.Join(dir, "editorial.txt")); !os.IsNotExist(err) {
		t.Fatalf("editorial.txt should not exist on failure")
	}
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	p, _ := newTestPipeline(t, nil, &stubDrafter{})

	_, err := p.Run(context.Background(), nil)
	if !errors.Is(err, validation.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}
