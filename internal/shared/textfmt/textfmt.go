package textfmt

import (
	"strings"
	"unicode"
)

// TitleWords upper-cases the first letter of every word, leaving the rest of
// each word untouched ("rose gown" -> "Rose Gown", "mcQueen" -> "McQueen").
func TitleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevBoundary := true
	for _, r := range s {
		if prevBoundary && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevBoundary = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return b.String()
}

// CapitalizeFirst upper-cases the first rune only.
func CapitalizeFirst(s string) string {
	for i, r := range s {
		return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
