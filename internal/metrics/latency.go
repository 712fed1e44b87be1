// Package metrics keeps rolling latency samples for tool invocations.
package metrics

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp time.Time
	duration  time.Duration
}

// Snapshot is a point-in-time aggregate of latency samples.
type Snapshot struct {
	Count int     `json:"count"`
	MinMs float64 `json:"min_ms"`
	MaxMs float64 `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Registry tracks recent latencies per name within a rolling window.
type Registry struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewRegistry(maxAge time.Duration) *Registry {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Registry{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Observe records one invocation of name.
func (r *Registry) Observe(name string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[name] = append(r.prune(r.samples[name], now), sample{timestamp: now, duration: d})
}

// Since records the time elapsed since start. It is meant for defer:
//
//	defer reg.Since("find", time.Now())
func (r *Registry) Since(name string, start time.Time) {
	r.Observe(name, r.now().Sub(start))
}

// Snapshot aggregates the live samples for every name seen in the window.
func (r *Registry) Snapshot() map[string]Snapshot {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Snapshot, len(r.samples))
	for name, ss := range r.samples {
		ss = r.prune(ss, now)
		r.samples[name] = ss
		if len(ss) == 0 {
			continue
		}
		out[name] = aggregate(ss)
	}
	return out
}

func (r *Registry) prune(ss []sample, now time.Time) []sample {
	cutoff := now.Add(-r.maxAge)
	writeIdx := 0
	for _, s := range ss {
		if !s.timestamp.Before(cutoff) {
			ss[writeIdx] = s
			writeIdx++
		}
	}
	return ss[:writeIdx]
}

func aggregate(ss []sample) Snapshot {
	values := make([]float64, 0, len(ss))
	var sum float64
	for _, s := range ss {
		ms := float64(s.duration) / float64(time.Millisecond)
		values = append(values, ms)
		sum += ms
	}
	sort.Float64s(values)

	return Snapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: sum / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

func percentile(sorted []float64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[len(sorted)-1]
	}

	index := (float64(len(sorted)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}
