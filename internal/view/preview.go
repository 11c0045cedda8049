package view

import (
	"fmt"

	"github.com/ytget/ytmp3/internal/format"
	"github.com/ytget/ytmp3/internal/model"
)

// Preview texts
const (
	ReadyBanner     = "✅ Ready to convert to MP3!"
	UnknownUploader = "Unknown"
	UntitledItem    = "Untitled"
)

// Field is one "label: value" line of a card
type Field struct {
	Label string
	Value string
}

// Entry is one listed playlist item
type Entry struct {
	Heading string
	Detail  string
}

// PreviewCard is the rendered /info payload
type PreviewCard struct {
	Playlist    bool
	Title       string
	Fields      []Field
	Description string
	Entries     []Entry
	More        string
	Banner      string
	BannerBadge Badge
}

// PlaylistBanner states how many items a playlist conversion will produce
func PlaylistBanner(total int) string {
	return fmt.Sprintf("ℹ️ All %d videos will be converted to MP3 and packaged as a ZIP file.", total)
}

// RenderPreview builds the card for a single item or a playlist. Views are
// grouped with g; a nil g prints plain digits.
func RenderPreview(p *model.Preview, g *format.Grouper) PreviewCard {
	if p == nil {
		return PreviewCard{}
	}
	if p.IsPlaylist() {
		return renderPlaylist(p)
	}

	views := format.NotAvailable
	if p.ViewCount > 0 {
		views = g.Format(p.ViewCount)
	}
	return PreviewCard{
		Title: orDefault(p.Title, UntitledItem),
		Fields: []Field{
			{Label: "Duration", Value: format.Duration(p.Duration)},
			{Label: "Uploader", Value: orDefault(p.Uploader, UnknownUploader)},
			{Label: "Views", Value: views},
		},
		Description: Truncate(p.Description, DescriptionLimit),
		Banner:      ReadyBanner,
		BannerBadge: BadgeSuccess,
	}
}

func renderPlaylist(p *model.Preview) PreviewCard {
	total := p.TotalCount()
	shown := p.PreviewEntries()

	entries := make([]Entry, 0, len(shown))
	for i, e := range shown {
		entries = append(entries, Entry{
			Heading: fmt.Sprintf("%d. %s", i+1, orDefault(e.Title, UntitledItem)),
			Detail:  format.Duration(e.Duration) + " · " + orDefault(e.Uploader, UnknownUploader),
		})
	}

	card := PreviewCard{
		Playlist:    true,
		Title:       orDefault(p.Title, UntitledItem),
		Fields:      []Field{{Label: "Videos", Value: fmt.Sprintf("%d", total)}},
		Entries:     entries,
		Banner:      PlaylistBanner(total),
		BannerBadge: BadgeInfo,
	}
	if rest := total - len(entries); rest > 0 {
		card.More = fmt.Sprintf("... and %d more", rest)
	}
	return card
}
