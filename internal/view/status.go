package view

import (
	"fmt"

	"github.com/ytget/ytmp3/internal/model"
)

// Badge is the emphasis of a status label
type Badge string

const (
	BadgePrimary Badge = "primary"
	BadgeSuccess Badge = "success"
	BadgeDanger  Badge = "danger"
	BadgeInfo    Badge = "info"
)

// Status labels
const (
	LabelStarting    = "Starting Conversion..."
	LabelConverting  = "Converting to MP3..."
	LabelComplete    = "MP3 Conversion Complete!"
	LabelFailed      = "Conversion Failed"
	KindPlaylist     = "Playlist (Multiple MP3s)"
	KindSingle       = "Single MP3 File"
	GenericJobError  = "An unknown error occurred during conversion"
	progressComplete = 100
)

// Status is the display state of the job panel
type Status struct {
	Label string
	Badge Badge

	// Progress is a percentage in 0..100. It is ignored when KeepProgress is set.
	Progress     float64
	KeepProgress bool
	Animating    bool
	ShowActions  bool

	// Optional detail lines, empty when the snapshot does not carry them
	Kind   string
	Tracks string
	Ready  string

	// Error is set for failed jobs and holds the message to present
	Error string
}

// Failed reports whether the job ended in error
func (s Status) Failed() bool {
	return s.Error != ""
}

// InitialStatus is shown right after a job is accepted
func InitialStatus() Status {
	return Status{
		Label:     LabelStarting,
		Badge:     BadgePrimary,
		Animating: true,
	}
}

// RenderStatus maps a snapshot to the job panel. Unknown statuses render like
// a running conversion.
func RenderStatus(snap *model.StatusSnapshot) Status {
	if snap == nil {
		return InitialStatus()
	}

	var st Status
	switch snap.Status {
	case model.JobStatusStarted:
		st = Status{Label: LabelStarting, Badge: BadgePrimary, Progress: snap.ProgressPercent(), Animating: true}
	case model.JobStatusCompleted:
		st = Status{Label: LabelComplete, Badge: BadgeSuccess, Progress: progressComplete, ShowActions: true}
	case model.JobStatusError:
		st = Status{Label: LabelFailed, Badge: BadgeDanger, KeepProgress: true, Error: orDefault(snap.Error, GenericJobError)}
	default:
		st = Status{Label: LabelConverting, Badge: BadgePrimary, Progress: snap.ProgressPercent(), Animating: true}
	}

	if snap.IsPlaylist != nil {
		st.Kind = KindSingle
		if *snap.IsPlaylist {
			st.Kind = KindPlaylist
		}
	}
	if snap.TotalVideos != nil {
		st.Tracks = fmt.Sprintf("Total tracks: %d", *snap.TotalVideos)
	}
	if snap.Files != nil {
		st.Ready = fmt.Sprintf("Ready files: %d", snap.ReadyFiles())
	}
	return st
}

// ProgressText is the percentage shown next to the bar
func ProgressText(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
