package deal

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// IdentityHash is the deterministic fingerprint used for exact duplicate
// detection: a pure function of (source name, normalized title, normalized
// price text, calendar date). Same inputs always produce the same hash.
func IdentityHash(sourceName, title, priceText string, date time.Time) string {
	parts := []string{
		NormalizeText(sourceName),
		NormalizeTitle(title),
		NormalizeText(priceText),
		date.Format("2006-01-02"),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// NormalizeTitle lowercases, strips punctuation noise, and collapses
// whitespace so near-identical listings compare equal.
func NormalizeTitle(s string) string {
	t := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '$', r == '.', r == '%':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeText lowercases and collapses whitespace without touching
// punctuation. Used for source names and price text, where symbols carry
// meaning.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
