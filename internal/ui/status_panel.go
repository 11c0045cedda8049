package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytmp3/internal/view"
)

// StatusPanel shows the state of the active conversion job
type StatusPanel struct {
	container *fyne.Container

	titleLabel  *widget.Label
	badgeLabel  *widget.Label
	progressBar *widget.ProgressBar
	spinner     *widget.ProgressBarInfinite
	kindLabel   *widget.Label
	tracksLabel *widget.Label
	readyLabel  *widget.Label

	saveBtn    *widget.Button
	browserBtn *widget.Button
	closeBtn   *widget.Button
	actions    *fyne.Container
}

// NewStatusPanel builds the panel; it starts hidden
func NewStatusPanel(loc *Localization, onSave, onOpenBrowser, onClose func()) *StatusPanel {
	sp := &StatusPanel{}

	sp.titleLabel = widget.NewLabel(loc.GetText(KeyConversionStatus))
	sp.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	sp.badgeLabel = widget.NewLabel("")
	sp.badgeLabel.TextStyle = fyne.TextStyle{Bold: true}

	sp.progressBar = widget.NewProgressBar()
	sp.progressBar.TextFormatter = func() string {
		return view.ProgressText(sp.progressBar.Value * 100)
	}
	sp.spinner = widget.NewProgressBarInfinite()
	sp.spinner.Hide()

	sp.kindLabel = widget.NewLabel("")
	sp.tracksLabel = widget.NewLabel("")
	sp.readyLabel = widget.NewLabel("")

	sp.saveBtn = widget.NewButton(loc.GetText(KeySaveMP3), onSave)
	sp.saveBtn.Importance = widget.HighImportance
	sp.browserBtn = widget.NewButton(loc.GetText(KeyOpenInBrowser), onOpenBrowser)
	sp.actions = container.NewHBox(sp.saveBtn, sp.browserBtn)
	sp.actions.Hide()

	sp.closeBtn = widget.NewButton(IconClose, onClose)
	sp.closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, sp.titleLabel, sp.closeBtn)
	sp.container = container.NewVBox(
		widget.NewSeparator(),
		header,
		sp.badgeLabel,
		container.NewStack(sp.progressBar, sp.spinner),
		sp.kindLabel,
		sp.tracksLabel,
		sp.readyLabel,
		sp.actions,
	)
	sp.container.Hide()
	return sp
}

// Container returns the panel's root object
func (sp *StatusPanel) Container() *fyne.Container {
	return sp.container
}

// Apply renders st and shows the panel
func (sp *StatusPanel) Apply(st view.Status) {
	sp.badgeLabel.SetText(st.Label)
	sp.badgeLabel.Importance = BadgeImportance(st.Badge)
	sp.badgeLabel.Refresh()

	if !st.KeepProgress {
		sp.progressBar.SetValue(st.Progress / 100)
	}

	// the indeterminate bar overlays the real one while the service reports no progress
	if st.Animating && st.Progress == 0 && !st.KeepProgress {
		sp.spinner.Show()
		sp.spinner.Start()
	} else {
		sp.spinner.Stop()
		sp.spinner.Hide()
	}

	setOptionalText(sp.kindLabel, st.Kind)
	setOptionalText(sp.tracksLabel, st.Tracks)
	setOptionalText(sp.readyLabel, st.Ready)

	if st.ShowActions {
		sp.actions.Show()
	} else {
		sp.actions.Hide()
	}
	sp.container.Show()
	sp.container.Refresh()
}

// Hide hides the panel
func (sp *StatusPanel) Hide() {
	sp.spinner.Stop()
	sp.container.Hide()
}

// SetSaving switches the save button between its idle and busy states
func (sp *StatusPanel) SetSaving(loc *Localization, busy bool) {
	setButtonBusy(sp.saveBtn, busy, loc.GetText(KeySaveMP3), loc.GetText(KeySaving))
}

// RefreshTexts re-applies localized labels
func (sp *StatusPanel) RefreshTexts(loc *Localization) {
	sp.titleLabel.SetText(loc.GetText(KeyConversionStatus))
	if !sp.saveBtn.Disabled() {
		sp.saveBtn.SetText(loc.GetText(KeySaveMP3))
	}
	sp.browserBtn.SetText(loc.GetText(KeyOpenInBrowser))
}

func setOptionalText(l *widget.Label, text string) {
	l.SetText(text)
	if text == "" {
		l.Hide()
	} else {
		l.Show()
	}
}

// setButtonBusy disables b and shows busyText, or restores idleText
func setButtonBusy(b *widget.Button, busy bool, idleText, busyText string) {
	if b == nil {
		return
	}
	if busy {
		b.SetText(busyText)
		b.Disable()
		return
	}
	b.SetText(idleText)
	b.Enable()
}
