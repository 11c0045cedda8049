package download

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultInterval is the delay between two status requests
	DefaultInterval = time.Second

	// DefaultRequestTimeout bounds a single status request
	DefaultRequestTimeout = 10 * time.Second
)

// Poller follows at most one job at a time. Starting a new job stops the
// previous loop, and snapshots of a stopped loop are never delivered.
//
// The update callback runs while the poller lock is held, so it must not call
// back into the Poller.
type Poller struct {
	source         StatusSource
	interval       time.Duration
	requestTimeout time.Duration

	mu       sync.Mutex
	jobID    string
	gen      uint64
	cancel   context.CancelFunc
	onUpdate UpdateFunc
}

// PollerOption configures a Poller
type PollerOption func(*Poller)

// WithInterval sets the polling interval
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithRequestTimeout sets the timeout of each status request
func WithRequestTimeout(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.requestTimeout = d
		}
	}
}

// NewPoller creates a poller reading job state from source
func NewPoller(source StatusSource, opts ...PollerOption) *Poller {
	p := &Poller{
		source:         source,
		interval:       DefaultInterval,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetUpdateCallback sets the function receiving snapshots
func (p *Poller) SetUpdateCallback(fn UpdateFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = fn
}

// Start begins polling taskID, replacing any job being polled
func (p *Poller) Start(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.jobID = taskID

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.loop(ctx, p.gen, taskID)
}

// Stop ends polling and forgets the active job
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.jobID = ""
}

// ActiveJob returns the id of the most recently started job. It stays set
// after the job reaches a terminal status, until Stop or the next Start.
func (p *Poller) ActiveJob() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jobID
}

// Running reports whether a polling loop is active
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
}

func (p *Poller) loop(ctx context.Context, gen uint64, taskID string) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if p.tick(ctx, gen, taskID) {
			return
		}
	}
}

// tick fetches one snapshot and reports whether the loop should end
func (p *Poller) tick(ctx context.Context, gen uint64, taskID string) bool {
	reqCtx, cancel := context.WithTimeout(ctx, p.requestTimeout)
	snap, err := p.source.Status(reqCtx, taskID)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || ctx.Err() != nil {
		return true
	}
	if err != nil {
		slog.Warn("status poll failed", "task_id", taskID, "err", err)
		return false
	}
	if snap == nil {
		return false
	}

	if p.onUpdate != nil {
		p.onUpdate(taskID, snap)
	}
	if snap.Status.IsTerminal() {
		slog.Info("job finished", "task_id", taskID, "status", snap.Status)
		p.cancel()
		p.cancel = nil
		return true
	}
	return false
}
