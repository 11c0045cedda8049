// Package config stores user settings in the fyne preferences of the app.
package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMode               = "ytmp3.mode"
	KeyServerURL          = "server_url"
	KeyDefaultQuality     = "default_quality"
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyCleanupAfterSave   = "cleanup_after_save"
)

// Default values
const (
	DefaultServerURL          = "http://127.0.0.1:8000"
	DefaultQuality            = model.DefaultBitrate
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	DefaultCleanupAfterSave   = false
	FallbackLanguage          = "en"
	FallbackDownloadDir       = "/tmp/downloads"
)

// Languages the UI is translated into
var SupportedLanguages = []string{"en", "ru", "pt"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadSavedMode returns the stored mode; anything unrecognised reads as download
func (s *Settings) LoadSavedMode() model.Mode {
	return model.ParseMode(s.app.Preferences().String(KeyMode))
}

// SaveMode stores the selected mode
func (s *Settings) SaveMode(m model.Mode) {
	s.app.Preferences().SetString(KeyMode, model.ParseMode(m.String()).String())
}

// GetServerURL returns the conversion service address
func (s *Settings) GetServerURL() string {
	u := strings.TrimSpace(s.app.Preferences().String(KeyServerURL))
	if u == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return u
}

// SetServerURL sets the conversion service address
func (s *Settings) SetServerURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, u)
}

// GetDefaultQuality returns the bitrate preselected for direct URL conversions
func (s *Settings) GetDefaultQuality() string {
	q := s.app.Preferences().String(KeyDefaultQuality)
	if !model.IsValidBitrate(q) {
		s.SetDefaultQuality(DefaultQuality)
		return DefaultQuality
	}
	return q
}

// SetDefaultQuality sets the preselected bitrate, ignoring unknown values
func (s *Settings) SetDefaultQuality(q string) {
	if !model.IsValidBitrate(q) {
		q = DefaultQuality
	}
	s.app.Preferences().SetString(KeyDefaultQuality, q)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, strings.TrimSpace(dir))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// ResolvedLanguage maps the configured language to a supported one,
// asking the OS when it is set to "system"
func (s *Settings) ResolvedLanguage() string {
	return ResolveLanguage(s.GetLanguage(), platform.SystemLanguage)
}

// ResolveLanguage returns lang if supported, the system language for
// "system", and FallbackLanguage otherwise
func ResolveLanguage(lang string, system func() string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == DefaultLanguage && system != nil {
		lang = system()
	}
	for _, l := range SupportedLanguages {
		if l == lang {
			return l
		}
	}
	return FallbackLanguage
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAutoRevealOnComplete returns whether a saved file is shown in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether a saved file is shown in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetCleanupAfterSave returns whether server files are released after saving
func (s *Settings) GetCleanupAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyCleanupAfterSave, DefaultCleanupAfterSave)
}

// SetCleanupAfterSave sets whether server files are released after saving
func (s *Settings) SetCleanupAfterSave(cleanup bool) {
	s.app.Preferences().SetBool(KeyCleanupAfterSave, cleanup)
}
