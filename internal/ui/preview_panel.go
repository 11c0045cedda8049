package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytmp3/internal/view"
)

// PreviewPanel shows the metadata card of a previewed URL
type PreviewPanel struct {
	container *fyne.Container
	card      *widget.Card
	body      *fyne.Container
}

// NewPreviewPanel builds an empty, hidden panel
func NewPreviewPanel() *PreviewPanel {
	pp := &PreviewPanel{
		body: container.NewVBox(),
	}
	pp.card = widget.NewCard("", "", pp.body)
	pp.container = container.NewVBox(pp.card)
	pp.container.Hide()
	return pp
}

// Container returns the panel's root object
func (pp *PreviewPanel) Container() *fyne.Container {
	return pp.container
}

// Show renders card. All text goes through plain labels.
func (pp *PreviewPanel) Show(loc *Localization, card view.PreviewCard) {
	subtitle := loc.GetText(KeyVideoInformation)
	if card.Playlist {
		subtitle = loc.GetText(KeyPlaylistInformation)
	}
	pp.card.SetTitle(card.Title)
	pp.card.SetSubTitle(subtitle)

	objects := make([]fyne.CanvasObject, 0, len(card.Fields)+len(card.Entries)+4)
	for _, f := range card.Fields {
		name := widget.NewLabel(f.Label + ":")
		name.TextStyle = fyne.TextStyle{Bold: true}
		objects = append(objects, container.NewHBox(name, widget.NewLabel(f.Value)))
	}
	if card.Description != "" {
		desc := widget.NewLabel(card.Description)
		desc.Wrapping = fyne.TextWrapWord
		objects = append(objects, desc)
	}
	for _, e := range card.Entries {
		heading := widget.NewLabel(e.Heading)
		heading.Truncation = fyne.TextTruncateEllipsis
		detail := widget.NewLabel(e.Detail)
		detail.Importance = widget.LowImportance
		objects = append(objects, container.NewVBox(heading, detail))
	}
	if card.More != "" {
		more := widget.NewLabel(card.More)
		more.TextStyle = fyne.TextStyle{Italic: true}
		objects = append(objects, more)
	}
	if card.Banner != "" {
		banner := widget.NewLabel(card.Banner)
		banner.Importance = BadgeImportance(card.BannerBadge)
		banner.Wrapping = fyne.TextWrapWord
		objects = append(objects, widget.NewSeparator(), banner)
	}

	pp.body.Objects = objects
	pp.body.Refresh()
	pp.container.Show()
}

// Clear removes the card and hides the panel
func (pp *PreviewPanel) Clear() {
	pp.body.Objects = nil
	pp.body.Refresh()
	pp.container.Hide()
}
