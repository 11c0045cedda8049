package ui

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytmp3/internal/config"
	"github.com/ytget/ytmp3/internal/controller"
	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/platform"
	"github.com/ytget/ytmp3/internal/view"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	ctl          *controller.Controller

	// do runs f on the Fyne goroutine; spawn runs blocking work off it
	do    func(f func())
	spawn func(f func())

	titleLabel    *widget.Label
	modeLabel     *widget.Label
	searchModeBtn *widget.Button
	urlModeBtn    *widget.Button

	searchPanel *fyne.Container
	searchEntry *widget.Entry
	searchBtn   *widget.Button
	resultsBox  *fyne.Container
	resultRows  map[controller.Control]*ResultRow

	urlPanel      *fyne.Container
	urlEntry      *widget.Entry
	previewBtn    *widget.Button
	convertBtn    *widget.Button
	qualityLabel  *widget.Label
	qualitySelect *widget.Select

	previewPanel *PreviewPanel
	statusPanel  *StatusPanel

	errorContainer *fyne.Container
	errorLabel     *widget.Label

	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       atomic.Uint64
}

// NewRootUI creates the main window content. Bind must be called before the
// window is shown.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, localization *Localization) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		do:           fyne.Do,
		spawn:        func(f func()) { go f() },
		resultRows:   make(map[controller.Control]*ResultRow),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LogoResource)
	ui.setupUI()
	return ui
}

// Bind connects the UI to the controller driving it
func (ui *RootUI) Bind(ctl *controller.Controller) {
	ui.ctl = ctl
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	logo := canvas.NewImageFromResource(LogoResource)
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.modeLabel = widget.NewLabel(view.ModeLabel(model.ModeDownload))

	ui.searchModeBtn = widget.NewButton(ui.localization.GetText(KeySearchMode), ui.onSearchMode)
	ui.urlModeBtn = widget.NewButton(ui.localization.GetText(KeyURLMode), ui.onURLMode)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logo, ui.titleLabel),
		container.NewHBox(ui.searchModeBtn, ui.urlModeBtn, settingsBtn),
		ui.modeLabel,
	)

	// Error banner (hidden by default)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	errorClose := widget.NewButton(IconClose, ui.HideError)
	errorClose.Importance = widget.LowImportance
	ui.errorContainer = container.NewBorder(nil, nil, nil, errorClose, ui.errorLabel)
	ui.errorContainer.Hide()

	// Notification panel for non-error feedback (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Importance = widget.SuccessImportance
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(header, widget.NewSeparator(), ui.errorContainer, ui.notificationContainer)

	// Search panel
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnSubmitted = func(string) { ui.onSearch() }
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance
	ui.resultsBox = container.NewVBox()
	ui.searchPanel = container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry),
		ui.resultsBox,
	)

	// Direct URL panel
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.urlEntry.OnSubmitted = func(string) { ui.onConvert() }
	ui.previewBtn = widget.NewButton(ui.localization.GetText(KeyPreview), ui.onPreview)
	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvert)
	ui.convertBtn.Importance = widget.HighImportance
	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	ui.qualitySelect = widget.NewSelect(model.BitrateLabels(), nil)
	ui.qualitySelect.SetSelected(model.BitrateLabel(ui.settings.GetDefaultQuality()))

	ui.previewPanel = NewPreviewPanel()
	ui.statusPanel = NewStatusPanel(ui.localization, ui.onSaveResult, ui.onOpenInBrowser, ui.onCloseStatus)

	ui.urlPanel = container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.previewBtn, ui.urlEntry),
		container.NewHBox(ui.qualityLabel, ui.qualitySelect, ui.convertBtn),
		ui.previewPanel.Container(),
		ui.statusPanel.Container(),
	)
	ui.searchPanel.Hide()

	content := container.NewBorder(top, nil, nil, nil,
		container.NewVScroll(container.NewVBox(ui.searchPanel, ui.urlPanel)))
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(ui.settings.ResolvedLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.titleLabel.SetText(loc.GetText(KeyAppTitle))
	ui.searchModeBtn.SetText(loc.GetText(KeySearchMode))
	ui.urlModeBtn.SetText(loc.GetText(KeyURLMode))
	ui.searchEntry.SetPlaceHolder(loc.GetText(KeySearchPlaceholder))
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyURLPlaceholder))
	ui.qualityLabel.SetText(loc.GetText(KeyQuality))

	idle := map[*widget.Button]string{
		ui.searchBtn:  loc.GetText(KeySearch),
		ui.previewBtn: loc.GetText(KeyPreview),
		ui.convertBtn: loc.GetText(KeyConvert),
	}
	for btn, text := range idle {
		if !btn.Disabled() {
			btn.SetText(text)
		}
	}
	ui.statusPanel.RefreshTexts(loc)
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.ResolvedLanguage())
	ui.qualitySelect.SetSelected(model.BitrateLabel(ui.settings.GetDefaultQuality()))
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSearchMode() {
	if ui.ctl != nil {
		ui.ctl.SetSearchMode()
	}
}

func (ui *RootUI) onURLMode() {
	if ui.ctl != nil {
		ui.ctl.SetDownloadMode()
	}
}

func (ui *RootUI) onSearch() {
	if ui.ctl == nil {
		return
	}
	query := ui.searchEntry.Text
	ui.spawn(func() { ui.ctl.Search(context.Background(), query) })
}

func (ui *RootUI) onPreview() {
	if ui.ctl == nil {
		return
	}
	videoURL := ui.urlEntry.Text
	ui.spawn(func() { ui.ctl.Preview(context.Background(), videoURL) })
}

func (ui *RootUI) onConvert() {
	if ui.ctl == nil {
		return
	}
	videoURL := ui.urlEntry.Text
	quality := model.BitrateFromLabel(ui.qualitySelect.Selected)
	ui.spawn(func() { ui.ctl.Convert(context.Background(), videoURL, quality) })
}

func (ui *RootUI) onResultConvert(index int, videoURL, quality string) {
	if ui.ctl == nil {
		return
	}
	ui.spawn(func() { ui.ctl.ConvertResult(context.Background(), index, videoURL, quality) })
}

func (ui *RootUI) onCloseStatus() {
	if ui.ctl != nil {
		ui.ctl.HideStatus()
	}
}

// onSaveResult stores the finished file locally and optionally reveals it
func (ui *RootUI) onSaveResult() {
	if ui.ctl == nil {
		return
	}
	ui.spawn(func() {
		path, ok := ui.ctl.SaveResult(context.Background())
		if !ok {
			return
		}
		ui.showNotification(ui.localization.GetText(KeySavedTo) + ": " + path)

		if ui.settings.GetAutoRevealOnComplete() {
			if err := platform.OpenFileInManager(path); err != nil {
				slog.Warn("reveal saved file failed", "path", path, "err", err)
			}
		}
	})
}

// onOpenInBrowser opens the result file URL with the system browser
func (ui *RootUI) onOpenInBrowser() {
	if ui.ctl == nil {
		return
	}
	raw, ok := ui.ctl.ResultURL()
	if !ok {
		return
	}
	u, err := url.Parse(raw)
	if err != nil {
		slog.Warn("bad result url", "url", raw, "err", err)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		slog.Warn("open result url failed", "url", raw, "err", err)
		ui.ShowError(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// showNotification displays a short message under the header and hides it
// after ToastAutoHide unless a newer message replaced it
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	seq := ui.notificationSeq.Add(1)
	ui.do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
	})
	time.AfterFunc(ToastAutoHide, func() {
		if ui.notificationSeq.Load() == seq {
			ui.hideNotification()
		}
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.do(func() {
		ui.notificationContainer.Hide()
	})
}

// ShowMode shows the panel of mode m and hides the other one
func (ui *RootUI) ShowMode(m model.Mode) {
	ui.do(func() {
		if ui.modeLabel != nil {
			ui.modeLabel.SetText(view.ModeLabel(m))
		}
		search := m == model.ModeSearch
		setVisible(ui.searchPanel, search)
		setVisible(ui.urlPanel, !search)
		setActive(ui.searchModeBtn, search)
		setActive(ui.urlModeBtn, !search)
	})
}

// SetBusy disables or restores the control
func (ui *RootUI) SetBusy(c controller.Control, busy bool) {
	ui.do(func() {
		loc := ui.localization
		switch c {
		case controller.ControlPreview:
			setButtonBusy(ui.previewBtn, busy, loc.GetText(KeyPreview), loc.GetText(KeyLoading))
		case controller.ControlSearch:
			setButtonBusy(ui.searchBtn, busy, loc.GetText(KeySearch), loc.GetText(KeySearching))
		case controller.ControlConvert:
			setButtonBusy(ui.convertBtn, busy, loc.GetText(KeyConvert), loc.GetText(KeyConverting))
		case controller.ControlSave:
			if ui.statusPanel != nil {
				ui.statusPanel.SetSaving(loc, busy)
			}
		default:
			if row, ok := ui.resultRows[c]; ok {
				row.SetBusy(busy)
			}
		}
	})
}

// ShowPreview renders a preview card
func (ui *RootUI) ShowPreview(card view.PreviewCard) {
	ui.do(func() {
		if ui.previewPanel != nil {
			ui.previewPanel.Show(ui.localization, card)
		}
	})
}

// ClearPreview removes the preview card
func (ui *RootUI) ClearPreview() {
	ui.do(func() {
		if ui.previewPanel != nil {
			ui.previewPanel.Clear()
		}
	})
}

// ShowResults replaces the result list
func (ui *RootUI) ShowResults(res view.Results) {
	ui.do(func() {
		if ui.resultsBox == nil {
			return
		}
		ui.resultRows = make(map[controller.Control]*ResultRow, len(res.Rows))

		if res.Empty() {
			ph := view.NoResults
			if res.Placeholder != nil {
				ph = *res.Placeholder
			}
			ui.resultsBox.Objects = []fyne.CanvasObject{placeholder(ph)}
			ui.resultsBox.Refresh()
			return
		}

		objects := make([]fyne.CanvasObject, 0, len(res.Rows))
		for i, r := range res.Rows {
			row := NewResultRow(i, r, ui.localization, ui.onResultConvert)
			ui.resultRows[controller.ResultControl(i)] = row
			objects = append(objects, row)
		}
		ui.resultsBox.Objects = objects
		ui.resultsBox.Refresh()
	})
}

// ShowStatus renders the job panel
func (ui *RootUI) ShowStatus(st view.Status) {
	ui.do(func() {
		if ui.statusPanel != nil {
			ui.statusPanel.Apply(st)
		}
	})
}

// HideStatus hides the job panel
func (ui *RootUI) HideStatus() {
	ui.do(func() {
		if ui.statusPanel != nil {
			ui.statusPanel.Hide()
		}
	})
}

// ShowError shows msg in the error banner
func (ui *RootUI) ShowError(msg string) {
	ui.do(func() {
		if ui.errorLabel == nil || ui.errorContainer == nil {
			return
		}
		ui.errorLabel.SetText(msg)
		ui.errorContainer.Show()
	})
}

// HideError hides the error banner
func (ui *RootUI) HideError() {
	ui.do(func() {
		if ui.errorContainer != nil {
			ui.errorContainer.Hide()
		}
	})
}

func placeholder(ph view.Placeholder) fyne.CanvasObject {
	icon := canvas.NewText(ph.Icon, theme.Color(theme.ColorNameForeground))
	icon.TextSize = PlaceholderIconSz
	icon.Alignment = fyne.TextAlignCenter

	heading := widget.NewLabel(ph.Heading)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	hint := widget.NewLabel(ph.Hint)
	hint.Importance = widget.LowImportance
	hint.Alignment = fyne.TextAlignCenter

	return container.NewVBox(icon, heading, hint)
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if o == nil {
		return
	}
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

func setActive(b *widget.Button, active bool) {
	if b == nil {
		return
	}
	if active {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	b.Refresh()
}
