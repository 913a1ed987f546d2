// Package suggest drives debounced search-as-you-type fund lookups.
//
// The engine owns a single debounce timer per input session: every keystroke
// rearms it, so only the last keystroke within the quiet interval triggers a
// lookup. Dispatched lookups are tagged with a monotonically increasing
// sequence number and a result is applied only while its tag is still the
// highest dispatched, so a slow stale lookup can never overwrite the result
// of a newer one. There is no transport-level abort; sequence gating alone
// provides the cancellation semantics.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wynet321/fund-insight-backend/internal/model"
)

// DefaultQuietInterval is the debounce window applied when no override is
// configured.
const DefaultQuietInterval = time.Second

// DefaultLimit is the lookup result cap applied when no override is
// configured.
const DefaultLimit = 10

// Searcher performs one suggestion lookup. Implemented by the upstream
// client; swapped for a fake in tests.
type Searcher interface {
	Search(ctx context.Context, keyword string, limit int) ([]model.Suggestion, error)
}

// Engine is the per-input-session suggestion state machine. All methods are
// safe for concurrent use.
type Engine struct {
	searcher Searcher
	quiet    time.Duration
	limit    int
	notify   func([]model.Suggestion)

	mu          sync.Mutex
	timer       *time.Timer
	seq         uint64
	text        string
	suggestions []model.Suggestion
	selected    *model.Suggestion
	closed      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithQuietInterval overrides the debounce window.
func WithQuietInterval(d time.Duration) Option {
	return func(e *Engine) { e.quiet = d }
}

// WithLimit overrides the lookup result cap.
func WithLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithNotify registers a callback fired on every wholesale replacement of the
// suggestion list. The callback runs with the engine lock held and must not
// call back into the engine.
func WithNotify(fn func([]model.Suggestion)) Option {
	return func(e *Engine) { e.notify = fn }
}

// NewEngine creates an idle engine bound to the given searcher.
func NewEngine(searcher Searcher, opts ...Option) *Engine {
	e := &Engine{
		searcher: searcher,
		quiet:    DefaultQuietInterval,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Input submits a keystroke. Non-blank text arms (or rearms) the debounce
// timer; blank text behaves like Clear. A keystroke arriving while a lookup
// is in flight restarts debouncing independently of that lookup.
func (e *Engine) Input(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.stopTimerLocked()
	e.selected = nil

	trimmed := strings.TrimSpace(text)
	e.text = trimmed
	if trimmed == "" {
		e.replaceLocked(nil)
		return
	}

	e.timer = time.AfterFunc(e.quiet, e.fire)
}

// Clear resets the session: cancels any armed timer, invalidates in-flight
// lookups and empties the suggestion list without arming a new lookup.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.stopTimerLocked()
	e.seq++
	e.text = ""
	e.replaceLocked(nil)
}

// Select resolves the session to a fund. The suggestion list is cleared and
// no further lookup fires until the next keystroke.
func (e *Engine) Select(s model.Suggestion) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.stopTimerLocked()
	e.seq++
	e.text = ""
	e.selected = &s
	e.replaceLocked(nil)
}

// Selected returns the fund resolved by the most recent Select, if any.
func (e *Engine) Selected() (model.Suggestion, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return model.Suggestion{}, false
	}
	return *e.selected, true
}

// Suggestions returns the current suggestion list.
func (e *Engine) Suggestions() []model.Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Suggestion, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// Close tears the session down. Any armed timer is cancelled and late lookup
// results are discarded.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.stopTimerLocked()
	e.seq++
}

// fire runs when the debounce timer expires: it dispatches exactly one lookup
// for the text that survived the quiet interval.
func (e *Engine) fire() {
	e.mu.Lock()
	if e.closed || e.text == "" {
		e.mu.Unlock()
		return
	}
	e.seq++
	token := e.seq
	keyword := e.text
	e.mu.Unlock()

	go e.lookup(token, keyword)
}

func (e *Engine) lookup(token uint64, keyword string) {
	results, err := e.searcher.Search(context.Background(), keyword, e.limit)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || token != e.seq {
		// A newer lookup was dispatched (or the session ended) while this
		// one was in flight; its result is no longer authoritative.
		return
	}
	if err != nil {
		// Discoverability is best-effort: transport failures clear the list
		// instead of surfacing an error.
		e.replaceLocked(nil)
		return
	}
	e.replaceLocked(results)
}

// replaceLocked swaps the suggestion list wholesale and notifies. Callers
// hold e.mu.
func (e *Engine) replaceLocked(results []model.Suggestion) {
	e.suggestions = results
	if e.notify != nil {
		e.notify(results)
	}
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
