// Package metrics defines the diagnostic signals raised by the search index
// and a Prometheus-backed recorder for them.
//
// Signals are best effort: a search index never fails an operation because a
// result was truncated, it only reports it here.
package metrics

import (
	"maps"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Truncation sites reported through RecordTruncation.
const (
	SiteKeysPerKeyword      = "keys_per_keyword"
	SiteSearchResults       = "search_results"
	SiteAutocompleteResults = "autocomplete_results"
)

// Fuzzy fallback call shapes reported through RecordFuzzyFallback.
const (
	ShapeSubstitute = "substitute"
	ShapeCandidates = "candidates"
)

// Recorder receives diagnostic signals from an index.
type Recorder interface {
	// RecordTruncation reports that dropped items were discarded at a
	// configured cap.
	RecordTruncation(site string, dropped int)
	// RecordFuzzyFallback reports a fuzzy fallback and whether it found a match.
	RecordFuzzyFallback(shape string, found bool)
}

// Nop discards every signal.
type Nop struct{}

// RecordTruncation does nothing.
func (Nop) RecordTruncation(string, int) {}

// RecordFuzzyFallback does nothing.
func (Nop) RecordFuzzyFallback(string, bool) {}

// Prometheus holds the Prometheus collectors for index diagnostics.
type Prometheus struct {
	Truncations    *prometheus.CounterVec
	TruncatedItems *prometheus.CounterVec
	FuzzyFallbacks *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them with reg. A nil
// reg leaves them unregistered, which is useful in tests.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		Truncations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_index_truncations_total",
				Help: "Total number of times a result or posting list was cut at a configured cap, by site.",
			},
			[]string{"site"},
		),
		TruncatedItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_index_truncated_items_total",
				Help: "Total number of keys or keywords dropped at a configured cap, by site.",
			},
			[]string{"site"},
		),
		FuzzyFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_index_fuzzy_fallbacks_total",
				Help: "Total fuzzy fallbacks by call shape and result (found, empty).",
			},
			[]string{"shape", "result"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Truncations, m.TruncatedItems, m.FuzzyFallbacks)
	}

	return m
}

// RecordTruncation increments the truncation counters for site.
func (m *Prometheus) RecordTruncation(site string, dropped int) {
	m.Truncations.WithLabelValues(site).Inc()
	if dropped > 0 {
		m.TruncatedItems.WithLabelValues(site).Add(float64(dropped))
	}
}

// RecordFuzzyFallback increments the fuzzy fallback counter.
func (m *Prometheus) RecordFuzzyFallback(shape string, found bool) {
	m.FuzzyFallbacks.WithLabelValues(shape, resultLabel(found)).Inc()
}

func resultLabel(found bool) string {
	if found {
		return "found"
	}
	return "empty"
}

// Counts is a snapshot of the signals recorded by a Counter.
type Counts struct {
	Truncations    map[string]int64 `json:"truncations"`
	TruncatedItems map[string]int64 `json:"truncated_items"`
	FuzzyFallbacks map[string]int64 `json:"fuzzy_fallbacks"` // "shape/found" or "shape/empty"
}

// Counter is an in-memory Recorder for hosts that do not run Prometheus.
type Counter struct {
	mu     sync.RWMutex
	counts Counts
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: Counts{
		Truncations:    make(map[string]int64),
		TruncatedItems: make(map[string]int64),
		FuzzyFallbacks: make(map[string]int64),
	}}
}

// RecordTruncation counts a truncation at site.
func (c *Counter) RecordTruncation(site string, dropped int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts.Truncations[site]++
	c.counts.TruncatedItems[site] += int64(dropped)
}

// RecordFuzzyFallback counts a fuzzy fallback.
func (c *Counter) RecordFuzzyFallback(shape string, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts.FuzzyFallbacks[shape+"/"+resultLabel(found)]++
}

// Truncations returns how many truncations were recorded at site.
func (c *Counter) Truncations(site string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.counts.Truncations[site]
}

// Snapshot returns a copy of current counts (safe for copying)
func (c *Counter) Snapshot() Counts {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Counts{
		Truncations:    maps.Clone(c.counts.Truncations),
		TruncatedItems: maps.Clone(c.counts.TruncatedItems),
		FuzzyFallbacks: maps.Clone(c.counts.FuzzyFallbacks),
	}
}
