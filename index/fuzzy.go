package index

import (
	"math"

	"github.com/gcbaptista/go-search-index/internal/topk"
	"github.com/gcbaptista/go-search-index/metrics"
)

// The fuzzy fallback runs only after an exact or prefix lookup found
// nothing. It scores the indexed keywords sharing the target's first
// Fuzzy.PrefixLength runes and keeps those reaching Fuzzy.MinimumScore.

func (ix *Index[K]) fuzzy() bool {
	return ix.scorer != nil
}

// FuzzyKeyword returns the indexed keyword closest to keyword, or keyword
// itself when it is indexed. ok is false when fuzzy matching is disabled
// or nothing is similar enough.
func (ix *Index[K]) FuzzyKeyword(keyword string) (string, bool) {
	normalized, ok := ix.tokenizer.Keyword(keyword)
	if !ok {
		return "", false
	}
	if _, ok := ix.keywords.get(normalized); ok {
		return normalized, true
	}
	e, ok := ix.substitute(normalized, nil)
	if !ok {
		return "", false
	}
	return e.keyword, true
}

// substitute returns the single best fuzzy match for target.
func (ix *Index[K]) substitute(target string, constraint []K) (*entry[K], bool) {
	if !ix.fuzzy() {
		return nil, false
	}
	best := ix.fuzzyScan(target, constraint, 1)
	ix.recorder.RecordFuzzyFallback(metrics.ShapeSubstitute, len(best) > 0)
	if len(best) == 0 {
		return nil, false
	}
	return best[0].Value, true
}

// candidates returns up to k fuzzy matches for target, best first.
func (ix *Index[K]) candidates(target string, constraint []K, k int) []topk.Scored[*entry[K]] {
	if !ix.fuzzy() {
		return nil
	}
	found := ix.fuzzyScan(target, constraint, k)
	ix.recorder.RecordFuzzyFallback(metrics.ShapeCandidates, len(found) > 0)
	return found
}

// fuzzyScan keeps the k best-scoring keywords similar to target. With a
// non-empty constraint, only keywords sharing a key with it are scored.
func (ix *Index[K]) fuzzyScan(target string, constraint []K, k int) []topk.Scored[*entry[K]] {
	tracker := topk.New[*entry[K]](k)
	minimum := ix.settings.Fuzzy.MinimumScore

	visit := func(e *entry[K]) bool {
		if e.keyword == target {
			return true
		}
		if len(constraint) > 0 && !intersects(e.keys, constraint, ix.compare) {
			return true
		}
		score := ix.scorer.Score(e.keyword, target)
		if math.IsNaN(score) || score < minimum {
			return true
		}
		tracker.Insert(e.keyword, e, score)
		return true
	}

	if n := ix.settings.Fuzzy.PrefixLength; n > 0 {
		ix.keywords.ascendPrefix(fuzzyPrefix(target, n), visit)
	} else {
		ix.keywords.ascend(visit)
	}

	return tracker.Results()
}

// fuzzyPrefix returns the first n runes of s, or s when it is shorter.
func fuzzyPrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
