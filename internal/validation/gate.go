package validation

import (
	"errors"

	"EditorialGate/internal/domain"
)

// ErrNoInput distinguishes a run with nothing to validate from a failed gate.
var ErrNoInput = errors.New("nothing to validate")

// Gate holds the corroboration thresholds applied to a finished batch.
type Gate struct {
	MinValidated    int
	MinFingerprints int
}

// Decide folds per-URL outcomes into the single pass/fail verdict. The wire
// sentinel collapses to one distinct fingerprint no matter how many validated
// links carry it, so all-wire batches cannot pass the diversity bar.
func (g Gate) Decide(outcomes []domain.Outcome) domain.GateResult {
	result := domain.GateResult{Rejected: map[string]string{}}
	distinct := map[string]struct{}{}

	for _, outcome := range outcomes {
		if outcome.Validated() {
			result.Validated = append(result.Validated, *outcome.Link)
			distinct[outcome.Link.Fingerprint] = struct{}{}
		} else {
			result.Rejected[outcome.URL] = string(outcome.Reason)
		}
	}

	result.Passed = len(result.Validated) >= g.MinValidated && len(distinct) >= g.MinFingerprints
	return result
}
