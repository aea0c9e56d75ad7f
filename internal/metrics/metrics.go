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

type logoStats struct {
	fetches  int
	failures int
}

type refreshStats struct {
	cycles      int
	failures    int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// logo fetches and refresh cycles, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	logos   logoStats
	refresh refreshStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
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

// RecordLogoFetch counts a logo download and whether it degraded to a placeholder.
func (r *Recorder) RecordLogoFetch(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.logos.fetches++
	if err != nil {
		r.logos.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLogoFetch(duration, err)
	}
}

// RecordRefreshCycle tracks a full refresh and whether it ended in the failed state.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refresh.cycles++
	r.refresh.lastLatency = duration
	if err != nil {
		r.refresh.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, err)
	}
}

// RecordHTTPRequest tracks requests served by the metrics endpoint.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for one provider plus the global logo/refresh counters.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
	LogoFetches     int
	LogoFailures    int
	RefreshCycles   int
	RefreshFailures int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		LogoFetches:     r.logos.fetches,
		LogoFailures:    r.logos.failures,
		RefreshCycles:   r.refresh.cycles,
		RefreshFailures: r.refresh.failures,
	}
	if stats, ok := r.stats[provider]; ok && stats != nil {
		snap.Calls = stats.calls
		snap.Errors = stats.errors
		snap.LastCallLatency = stats.lastCallLatency
	}
	return snap
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
