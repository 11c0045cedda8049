package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/ytmp3/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Absent preference defaults to direct URL mode
	if got := settings.LoadSavedMode(); got != model.ModeDownload {
		t.Errorf("Expected default mode download, got %s", got)
	}

	settings.SaveMode(model.ModeSearch)
	if got := app.Preferences().String(KeyMode); got != "search" {
		t.Errorf("Expected stored value 'search', got %q", got)
	}
	if got := settings.LoadSavedMode(); got != model.ModeSearch {
		t.Errorf("Expected mode search, got %s", got)
	}

	settings.SaveMode(model.ModeDownload)
	if got := settings.LoadSavedMode(); got != model.ModeDownload {
		t.Errorf("Expected mode download, got %s", got)
	}

	// Unrecognised stored values read as download
	app.Preferences().SetString(KeyMode, "Search")
	if got := settings.LoadSavedMode(); got != model.ModeDownload {
		t.Errorf("Expected mode download for unknown value, got %s", got)
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server %s, got %s", DefaultServerURL, got)
	}

	settings.SetServerURL("  https://mp3.example.com/  ")
	if got := settings.GetServerURL(); got != "https://mp3.example.com" {
		t.Errorf("Expected trimmed server URL, got %s", got)
	}

	settings.SetServerURL("")
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server after reset, got %s", got)
	}
}

func TestDefaultQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDefaultQuality(); got != "192" {
		t.Errorf("Expected default quality 192, got %s", got)
	}

	settings.SetDefaultQuality("320")
	if got := settings.GetDefaultQuality(); got != "320" {
		t.Errorf("Expected quality 320, got %s", got)
	}

	settings.SetDefaultQuality("1000")
	if got := settings.GetDefaultQuality(); got != "192" {
		t.Errorf("Expected invalid quality to reset to 192, got %s", got)
	}

	app.Preferences().SetString(KeyDefaultQuality, "garbage")
	if got := settings.GetDefaultQuality(); got != "192" {
		t.Errorf("Expected stored garbage to heal to 192, got %s", got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
	if got := settings.ResolvedLanguage(); got != "ru" {
		t.Errorf("Expected resolved language ru, got %s", got)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range append([]string{DefaultLanguage}, SupportedLanguages...) {
		if _, ok := options[lang]; !ok {
			t.Errorf("Missing language option %s", lang)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		system   string
		expected string
	}{
		{"en", "ru", "en"},
		{"pt", "", "pt"},
		{"system", "ru", "ru"},
		{"system", "de", "en"},
		{"system", "", "en"},
		{"fr", "ru", "en"},
		{" RU ", "", "ru"},
	}

	for _, test := range tests {
		system := func() string { return test.system }
		if got := ResolveLanguage(test.lang, system); got != test.expected {
			t.Errorf("ResolveLanguage(%q, %q) = %q, expected %q", test.lang, test.system, got, test.expected)
		}
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Unexpected auto reveal default")
	}
	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should be disabled")
	}

	if settings.GetCleanupAfterSave() != DefaultCleanupAfterSave {
		t.Error("Unexpected cleanup default")
	}
	settings.SetCleanupAfterSave(true)
	if !settings.GetCleanupAfterSave() {
		t.Error("Cleanup after save should be enabled")
	}
}
