package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type assignmentStats struct {
	computed          int
	formationFallback int
	rejectedOverrides int
	backfills         int
	lastDuration      time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// assignment computations. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu          sync.Mutex
	providers   map[string]*providerStats
	assignments map[string]*assignmentStats
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers:   make(map[string]*providerStats),
		assignments: make(map[string]*assignmentStats),
		otel:        otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureProvider(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordAssignment tracks one assignment computation for a consuming view.
func (r *Recorder) RecordAssignment(view, formation string, duration time.Duration, fallback bool, rejected int, backfill bool) {
	if r == nil {
		return
	}

	stats := r.ensureAssignment(view)
	r.mu.Lock()
	stats.computed++
	stats.lastDuration = duration
	if fallback {
		stats.formationFallback++
	}
	stats.rejectedOverrides += rejected
	if backfill {
		stats.backfills++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordAssignment(view, formation, duration, fallback, rejected, backfill)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks roster refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// ProviderSnapshot is a copy of the current stats for a provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok && stats != nil {
		return ProviderSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return ProviderSnapshot{}
}

// AssignmentSnapshot is a copy of the current stats for a consuming view.
type AssignmentSnapshot struct {
	Computed          int
	FormationFallback int
	RejectedOverrides int
	Backfills         int
	LastDuration      time.Duration
}

func (r *Recorder) AssignmentSnapshot(view string) AssignmentSnapshot {
	if r == nil {
		return AssignmentSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.assignments[view]; ok && stats != nil {
		return AssignmentSnapshot{
			Computed:          stats.computed,
			FormationFallback: stats.formationFallback,
			RejectedOverrides: stats.rejectedOverrides,
			Backfills:         stats.backfills,
			LastDuration:      stats.lastDuration,
		}
	}
	return AssignmentSnapshot{}
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureAssignment(view string) *assignmentStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.assignments[view]
	if !ok {
		stats = &assignmentStats{}
		r.assignments[view] = stats
	}
	return stats
}
