package metrics

import (
	"sort"
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures in-memory stats about ESPN fetches and forwards every
// observation to the OpenTelemetry instruments when Setup created them.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*fetchStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch counts one scoreboard fetch for sportPath and stores its latency.
func (r *Recorder) RecordFetch(sportPath string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[sportPath]
	if !ok {
		stats = &fetchStats{}
		r.stats[sportPath] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(sportPath, duration, err)
	}
}

// FetchCalls returns the total fetches recorded for a sport path.
func (r *Recorder) FetchCalls(sportPath string) int {
	return r.Snapshot(sportPath).Calls
}

// FetchErrors returns the failed fetches recorded for a sport path.
func (r *Recorder) FetchErrors(sportPath string) int {
	return r.Snapshot(sportPath).Errors
}

// LastCallLatency returns the last recorded latency for a sport path.
func (r *Recorder) LastCallLatency(sportPath string) time.Duration {
	return r.Snapshot(sportPath).LastCallLatency
}

// Snapshot is a copy of the stats for one sport path.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(sportPath string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[sportPath]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SportPaths lists every sport path with recorded fetches, sorted.
func (r *Recorder) SportPaths() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.stats))
	for p := range r.stats {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
