package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string. Input is trimmed and
// lower-cased first so the same address always hashes the same way.
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(input))))

	// Return the hex-encoded hash
	return hex.EncodeToString(h.Sum(nil))
}
