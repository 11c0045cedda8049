// Package format renders durations and counts for display.
package format

import (
	"fmt"
	"math"
)

// NotAvailable is shown for missing values
const NotAvailable = "N/A"

// Time conversion constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Duration formats a length in seconds as m:ss below one hour and h:mm:ss
// otherwise. Zero, negative and non-finite values yield NotAvailable.
func Duration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return NotAvailable
	}

	total := int64(seconds)
	hours := total / SecondsPerHour
	minutes := (total % SecondsPerHour) / SecondsPerMinute
	secs := total % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
