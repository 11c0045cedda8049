package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Abbreviation thresholds
const (
	Thousand = 1_000
	Million  = 1_000_000
)

// Abbreviate shortens large counts to one decimal with a K or M suffix
// (1500 -> "1.5K", 2500000 -> "2.5M"). Counts below 1000 are printed exactly.
func Abbreviate(n int64) string {
	switch {
	case n >= Million:
		return fmt.Sprintf("%.1fM", float64(n)/Million)
	case n >= Thousand:
		return fmt.Sprintf("%.1fK", float64(n)/Thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Grouper prints integers with the thousands separators of a language
type Grouper struct {
	tag     language.Tag
	printer *message.Printer
}

// NewGrouper returns a Grouper for a language code such as "en", "ru" or
// "pt-BR". Unknown or empty codes fall back to English.
func NewGrouper(lang string) *Grouper {
	tag := language.English
	if code := strings.TrimSpace(lang); code != "" {
		if parsed, err := language.Parse(code); err == nil {
			tag = parsed
		}
	}
	return &Grouper{tag: tag, printer: message.NewPrinter(tag)}
}

// Language returns the language tag used for grouping
func (g *Grouper) Language() language.Tag {
	return g.tag
}

// Format prints n with locale thousands separators
func (g *Grouper) Format(n int64) string {
	if g == nil || g.printer == nil {
		return strconv.FormatInt(n, 10)
	}
	return g.printer.Sprintf("%d", n)
}
