package platform

import (
	"log/slog"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// SystemLanguage returns the base language of the user's locale ("en" for
// "en-US"), or an empty string when it cannot be determined
func SystemLanguage() string {
	tag, err := locale.GetLocale()
	if err != nil {
		slog.Debug("system locale unavailable", "err", err)
		return ""
	}
	return BaseLanguage(tag)
}

// BaseLanguage strips region, script and encoding from a locale string
func BaseLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_.@"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
