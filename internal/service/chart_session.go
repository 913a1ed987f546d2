package service

import (
	"context"
	"sync"

	"github.com/wynet321/fund-insight-backend/internal/model"
)

// ChartSession serializes chart-data fetches for one interactive consumer.
//
// A user can change fund, granularity or date range faster than fetches
// resolve, and the transport offers no true abort. Each dispatched fetch is
// tagged with a monotonically increasing sequence number; a result is applied
// only while its tag is still the highest dispatched, so a stale fetch can
// never overwrite the series of the current selection. The (series, period
// return) pair is replaced wholesale, never patched.
type ChartSession struct {
	funds *FundService

	notify    func(model.ChartData)
	notifyErr func(error)

	mu   sync.Mutex
	seq  uint64
	data model.ChartData
}

// NewChartSession creates a session over the given fund service. onData fires
// on every applied series replacement, onErr on every surfaced fetch failure
// (retry is the user's re-submission, never automatic). Either callback may
// be nil.
func NewChartSession(funds *FundService, onData func(model.ChartData), onErr func(error)) *ChartSession {
	return &ChartSession{
		funds:     funds,
		notify:    onData,
		notifyErr: onErr,
	}
}

// Request dispatches an asynchronous fetch for the given selection,
// invalidating any fetch still in flight. Errors are reported through the
// error callback; the previously displayed data stays untouched on failure.
func (cs *ChartSession) Request(ctx context.Context, fundID, period, startDate, endDate string) {
	cs.mu.Lock()
	cs.seq++
	token := cs.seq
	cs.mu.Unlock()

	go func() {
		chart, err := cs.funds.HistoricalSeries(ctx, fundID, period, startDate, endDate)

		cs.mu.Lock()
		defer cs.mu.Unlock()
		if token != cs.seq {
			// A newer selection was requested while this fetch was in
			// flight; its result must not be applied.
			return
		}
		if err != nil {
			if cs.notifyErr != nil {
				cs.notifyErr(err)
			}
			return
		}
		cs.data = chart
		if cs.notify != nil {
			cs.notify(chart)
		}
	}()
}

// Reset discards the current data and invalidates any in-flight fetch, for
// when the selected fund is cleared.
func (cs *ChartSession) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.seq++
	cs.data = model.ChartData{}
}

// Data returns the most recently applied chart data.
func (cs *ChartSession) Data() model.ChartData {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.data
}
