package metrics

import (
	"sync"
	"time"
)

type formatStats struct {
	calls       int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about format calls.
// When telemetry is enabled it also forwards to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*formatStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*formatStats),
		otel:  otel,
	}
}

// RecordFormat counts a format call under its outcome and stores the last latency.
func (r *Recorder) RecordFormat(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[outcome]
	if !ok {
		stats = &formatStats{}
		r.stats[outcome] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFormat(outcome, duration)
	}
}

// RecordBatch tracks the size of a batch format request.
func (r *Recorder) RecordBatch(size int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordBatch(size)
}

// FormatCalls returns the number of format calls recorded for an outcome.
func (r *Recorder) FormatCalls(outcome string) int {
	return r.Snapshot(outcome).Calls
}

// Snapshot returns a copy of the current stats for an outcome.
type Snapshot struct {
	Calls       int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(outcome string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[outcome]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{Calls: stats.calls, LastLatency: stats.lastLatency}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
