package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytmp3/internal/api"
	"github.com/ytget/ytmp3/internal/config"
	"github.com/ytget/ytmp3/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// code <-> display label for the language select
	languageCodes  map[string]string
	languageLabels map[string]string

	// UI components
	serverEntry      *widget.Entry
	qualitySelect    *widget.Select
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
	cleanupCheck     *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		localization:   localization,
		window:         window,
		onSaved:        onSaved,
		languageCodes:  make(map[string]string),
		languageLabels: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverEntry.Validator = func(s string) error {
		_, err := api.New(s)
		return err
	}

	sd.qualitySelect = widget.NewSelect(model.BitrateLabels(), nil)

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	var languageOptions []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		sd.languageLabels[code] = label
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(loc.GetText(KeyAutoReveal), nil)
	sd.cleanupCheck = widget.NewCheck(loc.GetText(KeyCleanupAfterSave), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyDownloadSettings)),
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyServerURL)+":"),
		sd.serverEntry,

		widget.NewLabel(loc.GetText(KeyDefaultQuality)+":"),
		sd.qualitySelect,

		widget.NewLabel(loc.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,
		sd.autoRevealCheck,
		sd.cleanupCheck,

		widget.NewSeparator(),
		widget.NewLabel(loc.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL())
	sd.qualitySelect.SetSelected(model.BitrateLabel(sd.settings.GetDefaultQuality()))
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.cleanupCheck.SetChecked(sd.settings.GetCleanupAfterSave())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	loc := sd.localization

	serverChanged := false
	if server := sd.serverEntry.Text; server != "" {
		if _, err := api.New(server); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", loc.GetText(KeyInvalidServerURL), err), sd.window)
			return
		}
		serverChanged = server != sd.settings.GetServerURL()
		sd.settings.SetServerURL(server)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetDefaultQuality(model.BitrateFromLabel(sd.qualitySelect.Selected))
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
	sd.settings.SetCleanupAfterSave(sd.cleanupCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := loc.GetText(KeySettingsSaved)
	if serverChanged {
		message += "\n" + loc.GetText(KeyRestartForServer)
	}
	dialog.ShowInformation(loc.GetText(KeySettings), message, sd.window)
}
