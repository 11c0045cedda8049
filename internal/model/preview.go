package model

// PreviewTypePlaylist marks a playlist-shaped preview payload
const PreviewTypePlaylist = "playlist"

// PreviewTypeVideo marks a single-item preview payload
const PreviewTypeVideo = "video"

// MaxPreviewEntries caps how many playlist entries a preview shows
const MaxPreviewEntries = 10

// PlaylistEntry is a short summary of one playlist item
type PlaylistEntry struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
	Uploader string  `json:"uploader"`
}

// Preview is the metadata returned by GET /info. It is either a single item
// (title, duration, uploader, view_count, description) or a playlist
// (title, video_count, videos) depending on Type.
type Preview struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Duration    float64 `json:"duration"`
	Uploader    string  `json:"uploader"`
	ViewCount   int64   `json:"view_count"`
	Description string  `json:"description"`

	VideoCount int             `json:"video_count"`
	Videos     []PlaylistEntry `json:"videos"`
}

// IsPlaylist reports whether the payload has the playlist shape
func (p *Preview) IsPlaylist() bool {
	return p != nil && p.Type == PreviewTypePlaylist
}

// PreviewEntries returns at most MaxPreviewEntries playlist entries
func (p *Preview) PreviewEntries() []PlaylistEntry {
	if p == nil {
		return nil
	}
	if len(p.Videos) > MaxPreviewEntries {
		return p.Videos[:MaxPreviewEntries]
	}
	return p.Videos
}

// TotalCount returns the playlist size, falling back to the number of listed entries
func (p *Preview) TotalCount() int {
	if p == nil {
		return 0
	}
	if p.VideoCount > 0 {
		return p.VideoCount
	}
	return len(p.Videos)
}
