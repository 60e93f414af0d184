package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_RecordTruncation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.RecordTruncation(SiteKeysPerKeyword, 3)
	m.RecordTruncation(SiteKeysPerKeyword, 2)
	m.RecordTruncation(SiteSearchResults, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Truncations.WithLabelValues(SiteKeysPerKeyword)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.TruncatedItems.WithLabelValues(SiteKeysPerKeyword)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Truncations.WithLabelValues(SiteSearchResults)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "search_index_truncations_total")
	assert.Contains(t, names, "search_index_truncated_items_total")
}

func TestPrometheus_RecordFuzzyFallback(t *testing.T) {
	m := NewPrometheus(nil)

	m.RecordFuzzyFallback(ShapeSubstitute, true)
	m.RecordFuzzyFallback(ShapeSubstitute, false)
	m.RecordFuzzyFallback(ShapeCandidates, true)
	m.RecordFuzzyFallback(ShapeCandidates, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FuzzyFallbacks.WithLabelValues(ShapeSubstitute, "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FuzzyFallbacks.WithLabelValues(ShapeSubstitute, "empty")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FuzzyFallbacks.WithLabelValues(ShapeCandidates, "found")))
}

func TestPrometheus_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg)
	assert.Panics(t, func() { NewPrometheus(reg) })
}

func TestCounter(t *testing.T) {
	c := NewCounter()

	c.RecordTruncation(SiteAutocompleteResults, 4)
	c.RecordFuzzyFallback(ShapeCandidates, false)

	assert.Equal(t, int64(1), c.Truncations(SiteAutocompleteResults))
	assert.Equal(t, int64(0), c.Truncations(SiteKeysPerKeyword))

	snapshot := c.Snapshot()
	assert.Equal(t, int64(4), snapshot.TruncatedItems[SiteAutocompleteResults])
	assert.Equal(t, int64(1), snapshot.FuzzyFallbacks["candidates/empty"])

	// Snapshot is a copy
	snapshot.Truncations[SiteAutocompleteResults] = 100
	assert.Equal(t, int64(1), c.Truncations(SiteAutocompleteResults))
}

func TestCounter_Concurrent(t *testing.T) {
	c := NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.RecordTruncation(SiteSearchResults, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), c.Truncations(SiteSearchResults))
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	assert.NotPanics(t, func() {
		r.RecordTruncation(SiteSearchResults, 1)
		r.RecordFuzzyFallback(ShapeSubstitute, true)
	})
}
