package model

// JobStatus is the status of a conversion job as reported by the service
type JobStatus string

const (
	// JobStatusStarted means the job was accepted but work has not begun
	JobStatusStarted JobStatus = "started"

	// JobStatusDownloading means the source is being fetched and converted
	JobStatusDownloading JobStatus = "downloading"

	// JobStatusCompleted means the MP3 file(s) are ready
	JobStatusCompleted JobStatus = "completed"

	// JobStatusError means the job failed; the snapshot carries the reason
	JobStatusError JobStatus = "error"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsActive returns true while the service is still working on the job
func (s JobStatus) IsActive() bool {
	return s == JobStatusStarted || s == JobStatusDownloading
}

// IsTerminal returns true for statuses that end polling (completed or error)
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusError
}
