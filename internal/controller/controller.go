// Package controller implements the client workflow: switching modes,
// previewing and searching, launching conversions and following them to the
// end.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ytget/ytmp3/internal/alert"
	"github.com/ytget/ytmp3/internal/api"
	"github.com/ytget/ytmp3/internal/download"
	"github.com/ytget/ytmp3/internal/format"
	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/view"
)

// User-facing messages produced by the controller itself
const (
	MsgEnterURL      = "Please enter a YouTube URL"
	MsgEnterQuery    = "Please enter a search term"
	MsgPreviewFailed = "Failed to get video information"
	MsgSearchFailed  = "Search failed"
	MsgConvertFailed = "Failed to start conversion"
	MsgSaveFailed    = "Failed to save the file"
	MsgNotReady      = "The conversion has not finished yet"
)

// Controller coordinates the backend, the job poller and the view
type Controller struct {
	backend   Backend
	store     ModeStore
	view      View
	poller    *download.Poller
	presenter *alert.Presenter
	grouper   *format.Grouper

	saver            Saver
	downloadDir      func() string
	cleanupAfterSave func() bool

	mu       sync.Mutex
	mode     model.Mode
	finished map[string]model.JobStatus
}

// Option configures a Controller
type Option func(*Controller)

// WithPresenter replaces the default presenter writing to the view
func WithPresenter(p *alert.Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithGrouper sets the locale used for view counts
func WithGrouper(g *format.Grouper) Option {
	return func(c *Controller) { c.grouper = g }
}

// WithSaver enables saving results into the directory returned by dir
func WithSaver(s Saver, dir func() string) Option {
	return func(c *Controller) {
		c.saver = s
		c.downloadDir = dir
	}
}

// WithCleanupAfterSave releases server files after each successful save
// while enabled returns true
func WithCleanupAfterSave(enabled func() bool) Option {
	return func(c *Controller) { c.cleanupAfterSave = enabled }
}

// New creates a controller. It takes over the poller's update callback.
func New(backend Backend, store ModeStore, v View, poller *download.Poller, opts ...Option) *Controller {
	c := &Controller{
		backend:  backend,
		store:    store,
		view:     v,
		poller:   poller,
		mode:     model.ModeDownload,
		finished: make(map[string]model.JobStatus),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.presenter == nil {
		c.presenter = alert.NewPresenter(v)
	}
	if c.grouper == nil {
		c.grouper = format.NewGrouper("en")
	}
	poller.SetUpdateCallback(c.onStatus)
	return c
}

// Init applies the saved mode and hides the job panel
func (c *Controller) Init() {
	c.applyMode(c.store.LoadSavedMode())
	c.view.HideStatus()
}

// Mode returns the active mode
func (c *Controller) Mode() model.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetSearchMode shows the search panel and remembers the choice
func (c *Controller) SetSearchMode() {
	c.applyMode(model.ModeSearch)
	c.store.SaveMode(model.ModeSearch)
}

// SetDownloadMode shows the direct URL panel and remembers the choice
func (c *Controller) SetDownloadMode() {
	c.applyMode(model.ModeDownload)
	c.store.SaveMode(model.ModeDownload)
}

func (c *Controller) applyMode(m model.Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()

	c.view.ShowMode(m)
	c.view.ClearPreview()
	c.presenter.Clear()
}

// Preview fetches and shows metadata for a URL
func (c *Controller) Preview(ctx context.Context, rawURL string) {
	videoURL := strings.TrimSpace(rawURL)
	if videoURL == "" {
		c.presenter.Present(MsgEnterURL)
		return
	}

	c.view.SetBusy(ControlPreview, true)
	defer c.view.SetBusy(ControlPreview, false)

	p, err := c.backend.Info(ctx, videoURL)
	if err != nil {
		c.view.ClearPreview()
		c.fail("preview", err, MsgPreviewFailed)
		return
	}
	c.view.ShowPreview(view.RenderPreview(p, c.grouper))
}

// Search runs a query and shows the matches
func (c *Controller) Search(ctx context.Context, rawQuery string) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		c.presenter.Present(MsgEnterQuery)
		return
	}

	c.view.SetBusy(ControlSearch, true)
	defer c.view.SetBusy(ControlSearch, false)

	results, err := c.backend.Search(ctx, query, model.DefaultSearchResults)
	if err != nil {
		c.fail("search", err, MsgSearchFailed)
		return
	}
	slog.Debug("search finished", "query", query, "results", len(results))
	c.view.ShowResults(view.RenderResults(results))
}

// Convert starts a conversion of the URL typed into the direct URL panel
func (c *Controller) Convert(ctx context.Context, rawURL, quality string) {
	videoURL := strings.TrimSpace(rawURL)
	if videoURL == "" {
		c.presenter.Present(MsgEnterURL)
		return
	}
	c.launch(ctx, ControlConvert, videoURL, quality)
}

// ConvertResult starts a conversion of the i-th search result and switches to
// the direct URL panel where the job is shown
func (c *Controller) ConvertResult(ctx context.Context, i int, videoURL, quality string) {
	if c.launch(ctx, ResultControl(i), strings.TrimSpace(videoURL), quality) {
		c.SetDownloadMode()
	}
}

func (c *Controller) launch(ctx context.Context, ctl Control, videoURL, quality string) bool {
	if !model.IsValidBitrate(quality) {
		quality = model.DefaultBitrate
	}

	c.view.SetBusy(ctl, true)
	defer c.view.SetBusy(ctl, false)

	resp, err := c.backend.StartDownload(ctx, videoURL, quality)
	if err != nil {
		c.fail("start conversion", err, MsgConvertFailed)
		return false
	}

	c.poller.Stop()
	c.view.ShowStatus(view.InitialStatus())
	c.poller.Start(resp.TaskID)
	slog.Info("conversion started", "task_id", resp.TaskID, "quality", quality)
	return true
}

// onStatus runs on the poller goroutine for every fetched snapshot
func (c *Controller) onStatus(taskID string, snap *model.StatusSnapshot) {
	st := view.RenderStatus(snap)
	c.view.ShowStatus(st)

	if snap.Status.IsTerminal() {
		c.mu.Lock()
		c.finished[taskID] = snap.Status
		c.mu.Unlock()
	}
	if st.Failed() {
		c.presenter.Present(st.Error)
	}
}

// HideStatus hides the job panel and stops following the job
func (c *Controller) HideStatus() {
	c.poller.Stop()
	c.view.HideStatus()
}

// ActiveJob returns the id of the job shown in the status panel
func (c *Controller) ActiveJob() string {
	return c.poller.ActiveJob()
}

// ResultURL returns the address of the active job's result file
func (c *Controller) ResultURL() (string, bool) {
	id := c.poller.ActiveJob()
	if id == "" {
		return "", false
	}
	return c.backend.FileURL(id), true
}

// SaveResult writes the completed job's result into the download directory
// and returns its path
func (c *Controller) SaveResult(ctx context.Context) (string, bool) {
	id := c.poller.ActiveJob()

	c.mu.Lock()
	status := c.finished[id]
	c.mu.Unlock()

	if id == "" || status != model.JobStatusCompleted {
		c.presenter.Present(MsgNotReady)
		return "", false
	}
	if c.saver == nil || c.downloadDir == nil {
		c.presenter.Present(MsgSaveFailed)
		return "", false
	}

	c.view.SetBusy(ControlSave, true)
	defer c.view.SetBusy(ControlSave, false)

	path, err := c.saver.Save(ctx, id, c.downloadDir())
	if err != nil {
		generic := MsgSaveFailed
		if _, isAPI := api.Detail(err); !isAPI && !api.IsNetwork(err) {
			generic = MsgSaveFailed + ": " + err.Error()
		}
		c.fail("save result", err, generic)
		return "", false
	}

	if c.cleanupAfterSave != nil && c.cleanupAfterSave() {
		if err := c.backend.Cleanup(ctx, id); err != nil {
			slog.Warn("cleanup failed", "task_id", id, "err", err)
		} else {
			slog.Debug("server files released", "task_id", id)
		}
	}
	return path, true
}

// fail logs err and presents the service detail, the network error, or the
// generic message
func (c *Controller) fail(op string, err error, generic string) {
	slog.Error(op+" failed", "err", err)
	c.presenter.Present(errorMessage(err, generic))
}

func errorMessage(err error, generic string) string {
	if detail, ok := api.Detail(err); ok {
		return detail
	}
	if api.IsNetwork(err) {
		return err.Error()
	}
	return generic
}
