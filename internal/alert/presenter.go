package alert

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultDismissAfter is how long an error stays on screen
const DefaultDismissAfter = 15 * time.Second

// Banner is the single place errors are displayed
type Banner interface {
	ShowError(msg string)
	HideError()
}

// Timer is the part of *time.Timer the presenter needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d; time.AfterFunc is the production value
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Presenter rewrites error messages and shows them on a Banner, hiding each
// one after a fixed delay. A new message replaces the previous one and cancels
// its pending dismissal.
type Presenter struct {
	banner       Banner
	rules        []Rule
	dismissAfter time.Duration
	afterFunc    AfterFunc

	mu      sync.Mutex
	pending Timer
	seq     uint64
}

// Option configures a Presenter
type Option func(*Presenter)

// WithRules replaces DefaultRules
func WithRules(rules []Rule) Option {
	return func(p *Presenter) { p.rules = rules }
}

// WithDismissAfter changes the auto-dismiss delay
func WithDismissAfter(d time.Duration) Option {
	return func(p *Presenter) { p.dismissAfter = d }
}

// WithAfterFunc replaces the timer source
func WithAfterFunc(f AfterFunc) Option {
	return func(p *Presenter) { p.afterFunc = f }
}

// NewPresenter creates a presenter writing to banner
func NewPresenter(banner Banner, opts ...Option) *Presenter {
	p := &Presenter{
		banner:       banner,
		rules:        DefaultRules,
		dismissAfter: DefaultDismissAfter,
		afterFunc:    realAfterFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Present shows the friendly form of msg and schedules its dismissal.
// It returns the text that was displayed.
func (p *Presenter) Present(msg string) string {
	text := Friendly(msg, p.rules)
	slog.Info("showing error", "raw", msg, "shown", text)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
	p.seq++
	seq := p.seq

	if p.banner != nil {
		p.banner.ShowError(text)
	}
	if p.dismissAfter > 0 {
		p.pending = p.afterFunc(p.dismissAfter, func() { p.dismiss(seq) })
	}
	return text
}

// Clear hides the banner immediately and drops any pending dismissal
func (p *Presenter) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
	p.seq++
	if p.banner != nil {
		p.banner.HideError()
	}
}

// dismiss hides the banner unless a newer message replaced the one that
// scheduled it
func (p *Presenter) dismiss(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		return
	}
	p.pending = nil
	if p.banner != nil {
		p.banner.HideError()
	}
}
