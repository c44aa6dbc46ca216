package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TextFingerprint returns a short stable identifier for free text so logs can
// correlate requests without carrying the text itself.
func TextFingerprint(s string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(s)))
	return hex.EncodeToString(sum[:8])
}
