package view

import "github.com/ytget/ytmp3/internal/model"

// Mode labels
const (
	SearchModeLabel   = "🔍 Search Mode"
	DownloadModeLabel = "🔗 Direct URL Mode"
)

// ModeLabel describes the active input mode
func ModeLabel(m model.Mode) string {
	if m == model.ModeSearch {
		return SearchModeLabel
	}
	return DownloadModeLabel
}
