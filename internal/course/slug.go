package course

import (
	"strings"
)

const maxSlugLen = 50

// Normalize turns an arbitrary identifier into a canonical comparison
// key: lowercased, every run of characters outside [a-z0-9] collapsed
// to a single hyphen, edge hyphens stripped, capped at 50 characters.
// Total and idempotent.
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	out := b.String()
	if len(out) > maxSlugLen {
		out = strings.TrimRight(out[:maxSlugLen], "-")
	}
	return out
}

// LooseTokens returns the normalized form with hyphens replaced by
// spaces, for substring matching against titles. Never used by the
// exact-match comparison rules.
func LooseTokens(input string) string {
	return strings.TrimSpace(strings.ReplaceAll(Normalize(input), "-", " "))
}
