package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytmp3/internal/api"
	"github.com/ytget/ytmp3/internal/config"
	"github.com/ytget/ytmp3/internal/controller"
	"github.com/ytget/ytmp3/internal/download"
	"github.com/ytget/ytmp3/internal/format"
	"github.com/ytget/ytmp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytmp3"
	AppName = "YouTube to MP3"

	EnvServer   = "YTMP3_SERVER"
	EnvLogLevel = "YTMP3_LOG_LEVEL"
)

func main() {
	server := flag.String("server", os.Getenv(EnvServer), "conversion service base URL (overrides the saved setting)")
	logLevel := flag.String("log-level", envOr(EnvLogLevel, "info"), "log level: debug, info, warn, error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)})))
	slog.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LogoResource)

	settings := config.NewSettings(myApp)

	baseURL := strings.TrimSpace(*server)
	if baseURL == "" {
		baseURL = settings.GetServerURL()
	}
	client, err := api.New(baseURL)
	if err != nil {
		slog.Error("invalid server url, using default", "url", baseURL, "err", err)
		client, err = api.New(config.DefaultServerURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	slog.Info("conversion service", "url", client.BaseURL())

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.ResolvedLanguage())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, settings, localization)
	ctl := controller.New(client, settings, root, download.NewPoller(client),
		controller.WithSaver(download.NewSaver(client), settings.GetDownloadDirectory),
		controller.WithCleanupAfterSave(settings.GetCleanupAfterSave),
		controller.WithGrouper(format.NewGrouper(settings.ResolvedLanguage())),
	)
	root.Bind(ctl)
	ctl.Init()

	myWindow.ShowAndRun()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
