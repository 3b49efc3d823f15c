package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string { return newHex(16) }

// NewShortID returns 12 hex characters, used where a full id would be noise (file names).
func NewShortID() string { return newHex(6) }

func newHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
