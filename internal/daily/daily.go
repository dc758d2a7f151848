// Package daily derives a per-day random seed so every player gets the same
// word sample and scrambles on a given date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for the date using HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are enough entropy for a PCG seed
	return binary.BigEndian.Uint64(sum[:8])
}
