package view

import (
	"strings"
	"unicode"
)

// DescriptionLimit is the number of runes of a description shown in a card
const DescriptionLimit = 200

// Ellipsis marks truncated text
const Ellipsis = "..."

// CleanText normalises untrusted text for display: control characters and
// runs of whitespace collapse to a single space, and the result is trimmed.
func CleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == unicode.ReplacementChar {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate cleans s and cuts it to at most limit runes, appending Ellipsis
// when something was removed
func Truncate(s string, limit int) string {
	s = CleanText(s)
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ") + Ellipsis
}

// orDefault returns the cleaned s, or fallback when nothing is left
func orDefault(s, fallback string) string {
	if c := CleanText(s); c != "" {
		return c
	}
	return fallback
}
