package suggest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/suggest"
)

const quiet = 20 * time.Millisecond

// settle is long enough for a quiet interval plus lookup dispatch to finish.
const settle = 10 * quiet

// fakeSearcher records lookups and lets tests control when each one resolves.
type fakeSearcher struct {
	mu       sync.Mutex
	keywords []string
	started  chan string
	release  map[string]chan struct{}
	err      error
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		started: make(chan string, 16),
		release: make(map[string]chan struct{}),
	}
}

// blockOn makes the lookup for keyword wait until the returned func is called.
func (f *fakeSearcher) blockOn(keyword string) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.release[keyword] = ch
	return func() { close(ch) }
}

func (f *fakeSearcher) Search(_ context.Context, keyword string, _ int) ([]model.Suggestion, error) {
	f.mu.Lock()
	f.keywords = append(f.keywords, keyword)
	gate := f.release[keyword]
	err := f.err
	f.mu.Unlock()

	f.started <- keyword
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return []model.Suggestion{{ID: "1", Name: keyword}}, nil
}

func (f *fakeSearcher) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}

func TestEngine_DebounceDispatchesOnce(t *testing.T) {
	searcher := newFakeSearcher()
	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	engine.Input("a")
	engine.Input("ab")
	engine.Input("abc")

	waitFor(t, func() bool { return len(searcher.calls()) == 1 })
	time.Sleep(settle)

	calls := searcher.calls()
	if len(calls) != 1 {
		t.Fatalf("Expected exactly 1 lookup, got %d: %v", len(calls), calls)
	}
	if calls[0] != "abc" {
		t.Errorf("Expected lookup for 'abc', got %q", calls[0])
	}

	waitFor(t, func() bool { return len(engine.Suggestions()) == 1 })
	if got := engine.Suggestions()[0].Name; got != "abc" {
		t.Errorf("Expected suggestion for 'abc', got %q", got)
	}
}

func TestEngine_LastDispatchedWins(t *testing.T) {
	searcher := newFakeSearcher()
	releaseAB := searcher.blockOn("ab")
	releaseABC := searcher.blockOn("abc")

	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	// First lookup dispatches for "ab" and stalls.
	engine.Input("ab")
	<-searcher.started

	// Second lookup dispatches for "abc" while "ab" is still in flight.
	engine.Input("abc")
	<-searcher.started

	// Resolve out of order: the newer lookup first, then the stale one.
	releaseABC()
	waitFor(t, func() bool {
		s := engine.Suggestions()
		return len(s) == 1 && s[0].Name == "abc"
	})

	releaseAB()
	time.Sleep(settle)

	s := engine.Suggestions()
	if len(s) != 1 || s[0].Name != "abc" {
		t.Errorf("Stale 'ab' result overwrote newer 'abc' result: %+v", s)
	}
}

func TestEngine_BlankInputClearsWithoutLookup(t *testing.T) {
	searcher := newFakeSearcher()
	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	engine.Input("   ")
	time.Sleep(settle)

	if calls := searcher.calls(); len(calls) != 0 {
		t.Errorf("Expected no lookups for blank input, got %v", calls)
	}
	if got := engine.Suggestions(); len(got) != 0 {
		t.Errorf("Expected empty suggestion list, got %+v", got)
	}
}

func TestEngine_ClearCancelsPendingTimer(t *testing.T) {
	searcher := newFakeSearcher()
	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	engine.Input("a")
	engine.Clear()
	time.Sleep(settle)

	if calls := searcher.calls(); len(calls) != 0 {
		t.Errorf("Expected cancelled timer to dispatch nothing, got %v", calls)
	}
}

func TestEngine_CloseCancelsPendingTimer(t *testing.T) {
	searcher := newFakeSearcher()
	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))

	engine.Input("a")
	engine.Close()
	time.Sleep(settle)

	if calls := searcher.calls(); len(calls) != 0 {
		t.Errorf("Expected no lookup after Close, got %v", calls)
	}
}

func TestEngine_LookupFailureIsSwallowed(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.err = errors.New("connection refused")

	var mu sync.Mutex
	var notified [][]model.Suggestion
	engine := suggest.NewEngine(searcher,
		suggest.WithQuietInterval(quiet),
		suggest.WithNotify(func(s []model.Suggestion) {
			mu.Lock()
			notified = append(notified, s)
			mu.Unlock()
		}),
	)
	defer engine.Close()

	engine.Input("abc")
	waitFor(t, func() bool { return len(searcher.calls()) == 1 })
	time.Sleep(settle)

	if got := engine.Suggestions(); len(got) != 0 {
		t.Errorf("Expected empty list after transport failure, got %+v", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(notified) == 0 || len(notified[len(notified)-1]) != 0 {
		t.Errorf("Expected an empty-list notification, got %v", notified)
	}
}

func TestEngine_SelectResolvesAndClears(t *testing.T) {
	searcher := newFakeSearcher()
	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	engine.Input("abc")
	waitFor(t, func() bool { return len(engine.Suggestions()) == 1 })

	pick := engine.Suggestions()[0]
	engine.Select(pick)

	selected, ok := engine.Selected()
	if !ok {
		t.Fatal("Expected a selected fund")
	}
	if selected.Name != "abc" {
		t.Errorf("Expected selected fund 'abc', got %q", selected.Name)
	}
	if got := engine.Suggestions(); len(got) != 0 {
		t.Errorf("Expected cleared suggestion list after select, got %+v", got)
	}

	time.Sleep(settle)
	if calls := searcher.calls(); len(calls) != 1 {
		t.Errorf("Expected no further lookups after select, got %v", calls)
	}
}

func TestEngine_SelectDiscardsInFlightResult(t *testing.T) {
	searcher := newFakeSearcher()
	release := searcher.blockOn("abc")

	engine := suggest.NewEngine(searcher, suggest.WithQuietInterval(quiet))
	defer engine.Close()

	engine.Input("abc")
	<-searcher.started

	engine.Select(model.Suggestion{ID: "7", Name: "picked"})
	release()
	time.Sleep(settle)

	if got := engine.Suggestions(); len(got) != 0 {
		t.Errorf("Expected in-flight result discarded after select, got %+v", got)
	}
}
