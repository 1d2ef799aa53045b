package strategy

import (
	"strings"
	"unicode"
)

// Slug lower-cases text, keeps letters and digits, maps spaces, hyphens and
// slashes to underscores, collapses repeated underscores and trims them from
// the edges. It returns "section" for input with nothing left.
func Slug(text string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '/' || r == '\\':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "section"
	}
	return s
}
