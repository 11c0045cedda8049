package model

// DownloadRequest is the body of POST /download
type DownloadRequest struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

// DownloadResponse is returned when the service accepts a conversion job
type DownloadResponse struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusSnapshot is the full state of a job as last reported by the service.
// Each poll response replaces the previous snapshot; snapshots are never merged.
type StatusSnapshot struct {
	Status      JobStatus `json:"status"`
	Progress    *float64  `json:"progress,omitempty"`
	Error       string    `json:"error,omitempty"`
	Files       []string  `json:"files,omitempty"`
	IsPlaylist  *bool     `json:"is_playlist,omitempty"`
	TotalVideos *int      `json:"total_videos,omitempty"`
}

// ProgressPercent returns the reported progress clamped to 0..100, or 0 when absent
func (s *StatusSnapshot) ProgressPercent() float64 {
	if s == nil || s.Progress == nil {
		return 0
	}
	p := *s.Progress
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ReadyFiles returns the number of files the service reports as produced
func (s *StatusSnapshot) ReadyFiles() int {
	if s == nil {
		return 0
	}
	return len(s.Files)
}
