package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/view"
)

type busyEvent struct {
	control Control
	busy    bool
}

// fakeView records every call; the poller goroutine writes to it concurrently
type fakeView struct {
	mu            sync.Mutex
	modes         []model.Mode
	busy          []busyEvent
	previews      []view.PreviewCard
	clearPreviews int
	results       []view.Results
	statuses      []view.Status
	hideStatus    int
	errors        []string
	hideErrors    int
}

func (v *fakeView) ShowMode(m model.Mode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modes = append(v.modes, m)
}

func (v *fakeView) SetBusy(c Control, busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = append(v.busy, busyEvent{c, busy})
}

func (v *fakeView) ShowPreview(card view.PreviewCard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.previews = append(v.previews, card)
}

func (v *fakeView) ClearPreview() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearPreviews++
}

func (v *fakeView) ShowResults(res view.Results) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = append(v.results, res)
}

func (v *fakeView) ShowStatus(st view.Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statuses = append(v.statuses, st)
}

func (v *fakeView) HideStatus() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hideStatus++
}

func (v *fakeView) ShowError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append(v.errors, msg)
}

func (v *fakeView) HideError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hideErrors++
}

func (v *fakeView) shownErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.errors...)
}

func (v *fakeView) shownStatuses() []view.Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]view.Status(nil), v.statuses...)
}

func (v *fakeView) lastStatus() (view.Status, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.statuses) == 0 {
		return view.Status{}, false
	}
	return v.statuses[len(v.statuses)-1], true
}

func (v *fakeView) busyEvents() []busyEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]busyEvent(nil), v.busy...)
}

type memoryStore struct {
	mu    sync.Mutex
	saved string
	saves int
}

func (s *memoryStore) LoadSavedMode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ParseMode(s.saved)
}

func (s *memoryStore) SaveMode(m model.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = m.String()
	s.saves++
}

// fakeBackend serves canned answers and doubles as the poller's status source
type fakeBackend struct {
	mu sync.Mutex

	preview   *model.Preview
	results   []model.SearchResult
	taskIDs   []string
	statuses  map[string][]*model.StatusSnapshot
	err       error
	statusErr error

	calls       map[string]int
	lastURL     string
	lastQuality string
	lastQuery   string
	lastMax     int
	cleaned     []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		statuses: map[string][]*model.StatusSnapshot{},
		calls:    map[string]int{},
	}
}

func (b *fakeBackend) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *fakeBackend) totalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

func (b *fakeBackend) Info(ctx context.Context, videoURL string) (*model.Preview, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["info"]++
	b.lastURL = videoURL
	return b.preview, b.err
}

func (b *fakeBackend) StartDownload(ctx context.Context, videoURL, quality string) (*model.DownloadResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["start"]++
	b.lastURL = videoURL
	b.lastQuality = quality
	if b.err != nil {
		return nil, b.err
	}
	id := fmt.Sprintf("job%d", b.calls["start"])
	if len(b.taskIDs) > 0 {
		id = b.taskIDs[0]
		b.taskIDs = b.taskIDs[1:]
	}
	return &model.DownloadResponse{TaskID: id, Status: "started"}, nil
}

func (b *fakeBackend) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["search"]++
	b.lastQuery = query
	b.lastMax = maxResults
	return b.results, b.err
}

func (b *fakeBackend) Cleanup(ctx context.Context, taskID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["cleanup"]++
	b.cleaned = append(b.cleaned, taskID)
	return nil
}

func (b *fakeBackend) FileURL(taskID string) string {
	return "http://service/download/" + taskID
}

func (b *fakeBackend) Status(ctx context.Context, taskID string) (*model.StatusSnapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["status:"+taskID]++
	if b.statusErr != nil {
		return nil, b.statusErr
	}
	steps := b.statuses[taskID]
	if len(steps) == 0 {
		return &model.StatusSnapshot{Status: model.JobStatusDownloading}, nil
	}
	snap := steps[0]
	if len(steps) > 1 {
		b.statuses[taskID] = steps[1:]
	}
	return snap, nil
}

type fakeSaver struct {
	mu    sync.Mutex
	dirs  []string
	tasks []string
	err   error
}

func (s *fakeSaver) Save(ctx context.Context, taskID, dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, taskID)
	s.dirs = append(s.dirs, dir)
	if s.err != nil {
		return "", s.err
	}
	return dir + "/" + taskID + ".mp3", nil
}
