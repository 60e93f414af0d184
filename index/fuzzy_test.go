package index

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-search-index/config"
	"github.com/gcbaptista/go-search-index/metrics"
)

func TestFuzzyKeyword(t *testing.T) {
	ix := scenarioIndex(t, nil)

	tests := []struct {
		keyword string
		want    string
		wantOK  bool
	}{
		{"applle", "apple", true},
		{"APPLE", "apple", true},
		{"birthdya", "birthday", true},
		{"zzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, ok := ix.FuzzyKeyword(tt.keyword)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzyKeyword_Disabled(t *testing.T) {
	ix := scenarioIndex(t, func(s *config.Settings) { s.Fuzzy.Metric = config.MetricNone })

	_, ok := ix.FuzzyKeyword("applle")
	assert.False(t, ok)
	assert.Empty(t, ix.SearchWith(config.SearchAnd, 10, "applle"))
}

func TestFuzzyKeyword_MinimumScore(t *testing.T) {
	// "applle" scores 1 - 1/6 against "apple"
	strict := scenarioIndex(t, func(s *config.Settings) { s.Fuzzy.MinimumScore = 0.9 })
	_, ok := strict.FuzzyKeyword("applle")
	assert.False(t, ok)

	inclusive := scenarioIndex(t, func(s *config.Settings) { s.Fuzzy.MinimumScore = 0.8 })
	got, ok := inclusive.FuzzyKeyword("applle")
	require.True(t, ok)
	assert.Equal(t, "apple", got)
}

func TestFuzzyKeyword_PrefixLength(t *testing.T) {
	t.Run("candidates must share the prefix", func(t *testing.T) {
		ix := scenarioIndex(t, nil)
		_, ok := ix.FuzzyKeyword("pple")
		assert.False(t, ok)
	})

	t.Run("zero prefix scans every keyword", func(t *testing.T) {
		ix := scenarioIndex(t, func(s *config.Settings) { s.Fuzzy.PrefixLength = 0 })
		got, ok := ix.FuzzyKeyword("pple")
		require.True(t, ok)
		assert.Equal(t, "apple", got)
	})

	t.Run("target shorter than the prefix", func(t *testing.T) {
		ix := scenarioIndex(t, func(s *config.Settings) { s.Fuzzy.PrefixLength = 10 })
		got, ok := ix.FuzzyKeyword("bi")
		require.True(t, ok)
		assert.Equal(t, "bird", got)
	})
}

func TestFuzzyKeyword_Metrics(t *testing.T) {
	for _, metric := range config.Metrics {
		t.Run(string(metric), func(t *testing.T) {
			ix := scenarioIndex(t, func(s *config.Settings) {
				s.Fuzzy.Metric = metric
				s.Fuzzy.MinimumScore = 0.1
			})
			got, ok := ix.FuzzyKeyword("applle")
			require.True(t, ok)
			assert.Equal(t, "apple", got)
		})
	}
}

func TestFuzzy_TieBreaking(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	// Inserted in reverse keyword order; every candidate is one edit away
	for key, text := range []string{"cart", "care", "card", "cara"} {
		ix.Insert(key, Strings{text})
	}

	got, ok := ix.FuzzyKeyword("carx")
	require.True(t, ok)
	assert.Equal(t, "cara", got)

	assert.Equal(t, []string{"cara", "card"}, ix.AutocompleteWith(config.AutocompleteGlobal, 2, "carx"))
}

func TestFuzzy_PrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(reg)

	ix, err := New[int](config.Default(), WithRecorder(recorder))
	require.NoError(t, err)
	ix.Insert(1, Strings{"apple"})

	_, ok := ix.FuzzyKeyword("applle")
	require.True(t, ok)
	_, ok = ix.FuzzyKeyword("appzzzzzzzzz")
	require.False(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.FuzzyFallbacks.WithLabelValues(metrics.ShapeSubstitute, "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.FuzzyFallbacks.WithLabelValues(metrics.ShapeSubstitute, "empty")))
}

func TestFuzzyPrefix(t *testing.T) {
	assert.Equal(t, "app", fuzzyPrefix("apple", 3))
	assert.Equal(t, "ap", fuzzyPrefix("ap", 3))
	assert.Equal(t, "éco", fuzzyPrefix("école", 3))
	assert.Equal(t, "", fuzzyPrefix("apple", 0))
}
