package domain

import (
	"errors"
	"net/url"
	"time"
)

// RejectReason labels why a candidate URL was dropped from the batch.
type RejectReason string

const (
	ReasonDomainNotAllowed RejectReason = "domain_not_allowed"
	ReasonHTTPFail         RejectReason = "http_fail"
	ReasonSoft404          RejectReason = "soft_404"
	ReasonTooShort         RejectReason = "too_short"
	ReasonNotToday         RejectReason = "not_today"
	ReasonArchiveOld       RejectReason = "archive_old"
)

// WireServiceFingerprint marks bodies carrying wire-agency copy. Syndicated
// reprints across outlets collapse to this one value, so they never count as
// independent corroboration.
const WireServiceFingerprint = "WIRE_SERVICE"

// ErrHTTPFail reports that no fetch attempt produced a direct 200.
var ErrHTTPFail = errors.New("http_fail")

// ValidatedLink is the audit record for a URL that cleared every check.
type ValidatedLink struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Dateline    string `json:"dateline"`
	ContentHash string `json:"hash"`
	Fingerprint string `json:"fp"`
}

// Outcome is the terminal per-URL result: a ValidatedLink or a reject reason.
type Outcome struct {
	URL    string
	Link   *ValidatedLink
	Reason RejectReason
}

// Validated reports whether the URL cleared the whole stage sequence.
func (o Outcome) Validated() bool {
	return o.Link != nil
}

// GateResult aggregates a finished batch into the single pass/fail verdict.
type GateResult struct {
	Passed    bool
	Validated []ValidatedLink
	Rejected  map[string]string
}

// RunClock pins "now" and the reference timezone once per run. Every
// freshness decision derives from it; no stage re-samples the wall clock.
type RunClock struct {
	Now      time.Time
	Location *time.Location
}

// NewRunClock captures the current instant in the given reference timezone.
func NewRunClock(loc *time.Location) RunClock {
	if loc == nil {
		loc = time.UTC
	}
	return RunClock{Now: time.Now().In(loc), Location: loc}
}

// Today returns the run's calendar date at midnight in the reference timezone.
func (c RunClock) Today() time.Time {
	y, m, d := c.Now.In(c.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location)
}

// Host extracts the allow-list key (hostname) from a candidate URL.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
