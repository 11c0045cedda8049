// Package alert turns raw error strings into user-facing messages and shows
// them in a single banner that dismisses itself.
package alert

import "strings"

// Rule rewrites an error message when Match reports true
type Rule struct {
	Name    string
	Match   func(msg string) bool
	Rewrite func(msg string) string
}

// Friendly messages substituted by DefaultRules
const (
	MsgRestricted    = "⚠️ YouTube is temporarily restricting access to this video. Please try again in a few minutes or pick a different video."
	MsgPrivate       = "🔒 This video is private and cannot be converted. Please choose a public video."
	MsgDeleted       = "🗑️ This video has been deleted and is no longer available."
	MsgEmptyPlaylist = "📭 This playlist has no available videos. It may be empty, private, or all of its videos were removed."
	MsgBadRequest    = "❌ The service could not process this link. Please check that it is a valid YouTube video or playlist URL."
)

// containsAny returns a matcher testing for any of the needles, ignoring case
func containsAny(needles ...string) func(string) bool {
	return func(msg string) bool {
		lower := strings.ToLower(msg)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
		return false
	}
}

func replaceWith(text string) func(string) string {
	return func(string) string { return text }
}

// DefaultRules is evaluated in order; the first matching rule wins.
// Reordering changes which message is shown for errors matching several rules.
var DefaultRules = []Rule{
	{Name: "restricted", Match: containsAny("precondition", "youtube api error"), Rewrite: replaceWith(MsgRestricted)},
	{Name: "private", Match: containsAny("private"), Rewrite: replaceWith(MsgPrivate)},
	{Name: "deleted", Match: containsAny("deleted"), Rewrite: replaceWith(MsgDeleted)},
	{Name: "empty-playlist", Match: containsAny("no valid videos", "playlist is empty"), Rewrite: replaceWith(MsgEmptyPlaylist)},
	{Name: "bad-request", Match: containsAny("400", "bad request"), Rewrite: replaceWith(MsgBadRequest)},
}

// Friendly applies rules to msg and returns the first rewrite, or msg unchanged
func Friendly(msg string, rules []Rule) string {
	for _, r := range rules {
		if r.Match != nil && r.Match(msg) {
			if r.Rewrite == nil {
				return msg
			}
			return r.Rewrite(msg)
		}
	}
	return msg
}
