package index

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-search-index/config"
	internalErrors "github.com/gcbaptista/go-search-index/internal/errors"
	"github.com/gcbaptista/go-search-index/metrics"
	"github.com/gcbaptista/go-search-index/similarity"
)

// newTestIndex builds an int-keyed index from the default settings after
// applying mutate, recording signals into the returned counter.
func newTestIndex(t *testing.T, mutate func(s *config.Settings)) (*Index[int], *metrics.Counter) {
	t.Helper()
	settings := config.Default()
	if mutate != nil {
		mutate(&settings)
	}
	counter := metrics.NewCounter()
	ix, err := New[int](settings, WithRecorder(counter))
	require.NoError(t, err)
	return ix, counter
}

// scenarioIndex is the four-record index used across the search and
// autocomplete tests.
func scenarioIndex(t *testing.T, mutate func(s *config.Settings)) *Index[int] {
	t.Helper()
	ix, _ := newTestIndex(t, mutate)
	for key, text := range []string{"apple", "ball", "bird", "birthday"} {
		ix.Insert(key, Strings{text})
	}
	return ix
}

func TestNew_InvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.MinimumKeywordLength = 5
	settings.MaximumKeywordLength = 2

	_, err := New[int](settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestNew_UnknownMetric(t *testing.T) {
	settings := config.Default()
	settings.Fuzzy.Metric = "soundex"

	_, err := New[int](settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalErrors.ErrUnknownMetric)
}

func TestNew_NaNFuzzyScore(t *testing.T) {
	settings := config.Default()
	settings.Fuzzy.MinimumScore = math.NaN()

	_, err := New[int](settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestNewFunc_RequiresCompare(t *testing.T) {
	_, err := NewFunc[int](config.Default(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestNew_AppliesDefaults(t *testing.T) {
	ix, err := New[string](config.Settings{})
	require.NoError(t, err)

	settings := ix.Settings()
	assert.Equal(t, config.DefaultDelimiters, settings.Delimiters)
	assert.Equal(t, config.SearchLive, settings.SearchType)
	assert.False(t, settings.Fuzzy.Enabled())
}

func TestNew_SettingsAreCopied(t *testing.T) {
	settings := config.Default()
	settings.ExcludeKeywords = []string{"the"}

	ix, err := New[int](settings)
	require.NoError(t, err)
	settings.ExcludeKeywords[0] = "apple"

	ix.Insert(1, Strings{"the apple"})
	assert.Empty(t, ix.SearchWith(config.SearchAnd, 10, "the"))
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchAnd, 10, "apple"))
}

func TestNewFunc_UUIDKeys(t *testing.T) {
	ix, err := NewFunc[uuid.UUID](config.Default(), func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	require.NoError(t, err)

	first := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	ix.Insert(second, Strings{"blue bird"})
	ix.Insert(first, Strings{"red bird"})

	assert.Equal(t, []uuid.UUID{first, second}, ix.SearchWith(config.SearchAnd, 10, "bird"))
	assert.Equal(t, []uuid.UUID{second}, ix.Search("blue b"))
}

func TestWithScorer(t *testing.T) {
	// A scorer that only likes keywords of the same length
	sameLength := similarity.ScorerFunc(func(candidate, target string) float64 {
		if len(candidate) == len(target) {
			return 1
		}
		return 0
	})

	ix, err := New[int](config.Default(), WithScorer(sameLength))
	require.NoError(t, err)
	ix.Insert(1, Strings{"bird"})
	ix.Insert(2, Strings{"birthday"})

	keyword, ok := ix.FuzzyKeyword("birx")
	require.True(t, ok)
	assert.Equal(t, "bird", keyword)

	disabled, err := New[int](config.Default(), WithScorer(nil))
	require.NoError(t, err)
	disabled.Insert(1, Strings{"bird"})
	_, ok = disabled.FuzzyKeyword("birx")
	assert.False(t, ok)
}

func TestInsert_Idempotent(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	ix.Insert(1, Strings{"Big Bird"})
	before := ix.Profile(10)

	ix.Insert(1, Strings{"Big Bird"})
	assert.Equal(t, before, ix.Profile(10))
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "bird"))
}

func TestInsert_MultipleStrings(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	ix.Insert(7, Strings{"The Dark Knight", "Christopher Nolan"})

	assert.Equal(t, []int{7}, ix.SearchWith(config.SearchAnd, 10, "knight nolan"))
	assert.Equal(t, []int{7}, ix.SearchWith(config.SearchKeyword, 10, "the dark knight"))
	assert.Nil(t, ix.recordKeywords(nil))
}

func TestInsert_LengthBoundary(t *testing.T) {
	ix, _ := newTestIndex(t, func(s *config.Settings) {
		s.MinimumKeywordLength = 3
		s.MaximumStringLength = 0
		s.Fuzzy.Metric = config.MetricNone
	})
	ix.Insert(1, Strings{"abc ab"})

	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "abc"))
	assert.Empty(t, ix.SearchWith(config.SearchKeyword, 10, "ab"))
	assert.Equal(t, 1, ix.Len())
}

func TestRemove(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	ix.Insert(1, Strings{"red bird"})
	ix.Insert(2, Strings{"blue bird"})

	ix.Remove(1, Strings{"red bird"})
	assert.Equal(t, []int{2}, ix.SearchWith(config.SearchAnd, 10, "bird"))
	assert.Empty(t, ix.SearchWith(config.SearchKeyword, 10, "red"))

	ix.Remove(2, Strings{"blue bird"})
	assert.Equal(t, 0, ix.Len())
}

func TestRemove_DifferentRecordLeavesKeywords(t *testing.T) {
	ix, _ := newTestIndex(t, func(s *config.Settings) { s.Fuzzy.Metric = config.MetricNone })
	ix.Insert(1, Strings{"red bird"})

	ix.Remove(1, Strings{"red"})
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "bird"))
	assert.Empty(t, ix.SearchWith(config.SearchKeyword, 10, "red"))

	// Removing a key that was never inserted is a no-op
	ix.Remove(99, Strings{"bird"})
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "bird"))
}

func TestInsertRemove_RoundTrip(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	ix.Insert(1, Strings{"apple"})
	before := ix.Profile(100)

	record := Strings{"Big Bird", "Sesame Street"}
	ix.Insert(2, record)
	ix.Remove(2, record)

	assert.Equal(t, before, ix.Profile(100))
}

func TestReplace(t *testing.T) {
	ix, _ := newTestIndex(t, func(s *config.Settings) { s.Fuzzy.Metric = config.MetricNone })
	ix.Insert(1, Strings{"red apple"})

	ix.Replace(1, Strings{"red apple"}, Strings{"green apple"})

	assert.Empty(t, ix.SearchWith(config.SearchKeyword, 10, "red"))
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "green"))
	assert.Equal(t, []int{1}, ix.SearchWith(config.SearchKeyword, 10, "apple"))
}

func TestReplace_MatchesRemoveThenInsert(t *testing.T) {
	oldRecord := Strings{"the quick brown fox"}
	newRecord := Strings{"the lazy brown dog"}

	replaced, _ := newTestIndex(t, nil)
	replaced.Insert(1, oldRecord)
	replaced.Insert(2, Strings{"quick dog"})
	replaced.Replace(1, oldRecord, newRecord)

	rebuilt, _ := newTestIndex(t, nil)
	rebuilt.Insert(1, oldRecord)
	rebuilt.Insert(2, Strings{"quick dog"})
	rebuilt.Remove(1, oldRecord)
	rebuilt.Insert(1, newRecord)

	assert.Equal(t, rebuilt.Profile(100), replaced.Profile(100))
}

func TestReplace_SameRecordIsNoop(t *testing.T) {
	ix, _ := newTestIndex(t, nil)
	record := Strings{"red apple"}
	ix.Insert(1, record)
	before := ix.Profile(10)

	ix.Replace(1, record, record)
	assert.Equal(t, before, ix.Profile(10))
}

func TestClear(t *testing.T) {
	ix := scenarioIndex(t, nil)
	require.Equal(t, 4, ix.Len())

	ix.Clear()
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Search("bi"))

	// The index stays usable with its settings
	ix.Insert(1, Strings{"Bird"})
	assert.Equal(t, []int{1}, ix.Search("BIR"))
}

func TestProfile(t *testing.T) {
	ix, _ := newTestIndex(t, func(s *config.Settings) { s.MaximumStringLength = 0 })
	ix.Insert(1, Strings{"red bird"})
	ix.Insert(2, Strings{"blue bird"})
	ix.Insert(3, Strings{"red ball"})
	ix.Insert(4, Strings{"red apple"})

	assert.Equal(t, []KeywordCount{
		{Keyword: "red", Keys: 3},
		{Keyword: "bird", Keys: 2},
		{Keyword: "apple", Keys: 1}, // ties in keyword order
		{Keyword: "ball", Keys: 1},
	}, ix.Profile(4))

	assert.Len(t, ix.Profile(100), 5)
	assert.Empty(t, ix.Profile(0))
}
