package controller

import (
	"context"
	"fmt"

	"github.com/ytget/ytmp3/internal/alert"
	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/view"
)

// Control names a user control that is disabled while its request runs
type Control string

const (
	ControlPreview Control = "preview"
	ControlSearch  Control = "search"
	ControlConvert Control = "convert"
	ControlSave    Control = "save"
)

// ResultControl is the download trigger of the i-th search result
func ResultControl(i int) Control {
	return Control(fmt.Sprintf("result-%d", i))
}

// View is everything the controller draws on. Implementations must tolerate
// calls for parts they do not have.
type View interface {
	alert.Banner

	ShowMode(m model.Mode)
	SetBusy(c Control, busy bool)

	ShowPreview(card view.PreviewCard)
	ClearPreview()
	ShowResults(res view.Results)

	ShowStatus(st view.Status)
	HideStatus()
}

// Backend is the conversion service
type Backend interface {
	Info(ctx context.Context, videoURL string) (*model.Preview, error)
	StartDownload(ctx context.Context, videoURL, quality string) (*model.DownloadResponse, error)
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error)
	Cleanup(ctx context.Context, taskID string) error
	FileURL(taskID string) string
}

// ModeStore persists the selected mode
type ModeStore interface {
	LoadSavedMode() model.Mode
	SaveMode(m model.Mode)
}

// Saver writes a completed job's result into a directory
type Saver interface {
	Save(ctx context.Context, taskID, dir string) (string, error)
}
