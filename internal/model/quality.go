package model

import "strings"

// DefaultBitrate is the preselected MP3 bitrate in kbps
const DefaultBitrate = "192"

// BitrateSuffix is appended to a bitrate for display
const BitrateSuffix = " kbps"

// BitrateOptions lists the selectable MP3 bitrates, highest first
var BitrateOptions = []string{"320", "256", "192", "128", "96"}

// IsValidBitrate reports whether q is one of BitrateOptions
func IsValidBitrate(q string) bool {
	for _, opt := range BitrateOptions {
		if opt == q {
			return true
		}
	}
	return false
}

// BitrateLabel returns the display label for a bitrate, e.g. "192 kbps"
func BitrateLabel(q string) string {
	return q + BitrateSuffix
}

// BitrateLabels returns display labels for all BitrateOptions
func BitrateLabels() []string {
	labels := make([]string, 0, len(BitrateOptions))
	for _, opt := range BitrateOptions {
		labels = append(labels, BitrateLabel(opt))
	}
	return labels
}

// BitrateFromLabel converts a display label back to a bitrate, falling back to
// DefaultBitrate for unknown labels
func BitrateFromLabel(label string) string {
	q := strings.TrimSpace(strings.TrimSuffix(label, BitrateSuffix))
	if IsValidBitrate(q) {
		return q
	}
	return DefaultBitrate
}
