package model

// Mode selects which input panel is presented
type Mode string

const (
	ModeSearch   Mode = "search"
	ModeDownload Mode = "download"
)

// ParseMode maps a stored preference to a Mode. Anything other than "search"
// yields ModeDownload.
func ParseMode(s string) Mode {
	if s == string(ModeSearch) {
		return ModeSearch
	}
	return ModeDownload
}

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}
