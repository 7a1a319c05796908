package metrics

import (
	"sync"
	"time"
)

type tableStats struct {
	loads        int
	rowsLoaded   int
	rowsDropped  int
	errors       int
	lastDuration time.Duration
}

type viewStats struct {
	computations int
	errors       int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset loads, view
// computations, and HTTP traffic. It is intentionally simple so tests can
// assert on it directly; OTel export piggybacks on the same calls.
type Recorder struct {
	mu     sync.Mutex
	tables map[string]*tableStats
	views  map[string]*viewStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		tables: make(map[string]*tableStats),
		views:  make(map[string]*viewStats),
		otel:   otel,
	}
}

// RecordTableLoad tracks one source-table load attempt.
func (r *Recorder) RecordTableLoad(table string, rows, dropped int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureTable(table)
	r.mu.Lock()
	stats.loads++
	stats.rowsLoaded += rows
	stats.rowsDropped += dropped
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTableLoad(table, rows, dropped, duration, err)
	}
}

// RecordViewComputation tracks one view build.
func (r *Recorder) RecordViewComputation(view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureView(view)
	r.mu.Lock()
	stats.computations++
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordViewComputation(view, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// TableSnapshot is a copy of the per-table counters.
type TableSnapshot struct {
	Loads        int
	RowsLoaded   int
	RowsDropped  int
	Errors       int
	LastDuration time.Duration
}

// TableLoads returns a copy of the counters recorded for a table.
func (r *Recorder) TableLoads(table string) TableSnapshot {
	if r == nil {
		return TableSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tables[table]
	if !ok {
		return TableSnapshot{}
	}
	return TableSnapshot{
		Loads:        stats.loads,
		RowsLoaded:   stats.rowsLoaded,
		RowsDropped:  stats.rowsDropped,
		Errors:       stats.errors,
		LastDuration: stats.lastDuration,
	}
}

// ViewSnapshot is a copy of the per-view counters.
type ViewSnapshot struct {
	Computations int
	Errors       int
	LastDuration time.Duration
}

// ViewComputations returns a copy of the counters recorded for a view.
func (r *Recorder) ViewComputations(view string) ViewSnapshot {
	if r == nil {
		return ViewSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.views[view]
	if !ok {
		return ViewSnapshot{}
	}
	return ViewSnapshot{
		Computations: stats.computations,
		Errors:       stats.errors,
		LastDuration: stats.lastDuration,
	}
}

func (r *Recorder) ensureTable(table string) *tableStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tables[table]
	if !ok {
		stats = &tableStats{}
		r.tables[table] = stats
	}
	return stats
}

func (r *Recorder) ensureView(view string) *viewStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.views[view]
	if !ok {
		stats = &viewStats{}
		r.views[view] = stats
	}
	return stats
}
