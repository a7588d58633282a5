package validation

import (
	"testing"

	"EditorialGate/internal/domain"
)

func validatedOutcome(url, fp string) domain.Outcome {
	return domain.Outcome{
		URL: url,
		Link: &domain.ValidatedLink{
			URL:         url,
			Domain:      domain.Host(url),
			Fingerprint: fp,
		},
	}
}

func TestGatePassesAtThresholds(t *testing.T) {
	t.Parallel()

	gate := Gate{MinValidated: 3, MinFingerprints: 2}
	outcomes := []domain.Outcome{
		validatedOutcome("https://thehindu.com/a", "abc"),
		validatedOutcome("https://ndtv.com/b", "abc"),
		validatedOutcome("https://indiatoday.in/c", "def"),
	}

	result := gate.Decide(outcomes)
	if !result.Passed {
		t.Fatalf("expected pass at exactly 3 validated / 2 distinct")
	}
	if len(result.Validated) != 3 {
		t.Fatalf("expected 3 validated records, got %d", len(result.Validated))
	}
}

func TestGateFailsOnFingerprintDiversity(t *testing.T) {
	t.Parallel()

	gate := Gate{MinValidated: 3, MinFingerprints: 2}
	outcomes := []domain.Outcome{
		validatedOutcome("https://thehindu.com/a", domain.WireServiceFingerprint),
		validatedOutcome("https://ndtv.com/b", domain.WireServiceFingerprint),
		validatedOutcome("https://indiatoday.in/c", domain.WireServiceFingerprint),
	}

	if gate.Decide(outcomes).Passed {
		t.Fatalf("three wire-service links must count as one source")
	}
}

func TestGateFailsOnValidatedCount(t *testing.T) {
	t.Parallel()

	gate := Gate{MinValidated: 3, MinFingerprints: 2}
	outcomes := []domain.Outcome{
		validatedOutcome("https://thehindu.com/a", "abc"),
		validatedOutcome("https://ndtv.com/b", "def"),
	}

	if gate.Decide(outcomes).Passed {
		t.Fatalf("two validated links must not pass")
	}
}

func TestGateRecordsRejections(t *testing.T) {
	t.Parallel()

	gate := Gate{MinValidated: 3, MinFingerprints: 2}
	outcomes := []domain.Outcome{
		validatedOutcome("https://thehindu.com/a", "abc"),
		{URL: "https://ndtv.com/b", Reason: domain.ReasonSoft404},
		{URL: "https://example.com/c", Reason: domain.ReasonDomainNotAllowed},
	}

	result := gate.Decide(outcomes)
	if result.Passed {
		t.Fatalf("expected gate failure")
	}
	if result.Rejected["https://ndtv.com/b"] != "soft_404" {
		t.Fatalf("unexpected rejection map: %v", result.Rejected)
	}
	if result.Rejected["https://example.com/c"] != "domain_not_allowed" {
		t.Fatalf("unexpected rejection map: %v", result.Rejected)
	}
}
