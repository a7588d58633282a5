package page

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"EditorialGate/internal/domain"
)

const fingerprintLen = 32

// Fingerprint reduces readable body text to a dedup key. Bodies carrying a
// wire-agency marker map to the shared sentinel; everything else gets a
// truncated SHA-1 digest over the exact text.
func Fingerprint(text string) string {
	low := strings.ToLower(text)
	if strings.Contains(low, "pti") || strings.Contains(low, "reuters") {
		return domain.WireServiceFingerprint
	}

	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
