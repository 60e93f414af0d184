// Package topk keeps the K highest-scoring keywords seen during a scan.
//
// Ties are broken by keyword: among equal scores the lexicographically
// smaller keyword ranks higher, so the retained set and its order do not
// depend on insertion order.
package topk

import (
	"cmp"
	"slices"
)

// Scored is a keyword retained by a Tracker together with its payload.
type Scored[V any] struct {
	Keyword string
	Value   V
	Score   float64
}

// Tracker retains at most capacity entries. It caches the worst retained
// entry so that a rejected candidate costs a single comparison; the cache is
// rebuilt only after an eviction.
type Tracker[V any] struct {
	capacity int
	entries  map[string]Scored[V]
	worst    string
}

// New creates a Tracker holding up to capacity entries.
func New[V any](capacity int) *Tracker[V] {
	return &Tracker[V]{
		capacity: capacity,
		entries:  make(map[string]Scored[V], max(capacity, 0)),
	}
}

// Len returns the number of retained entries.
func (t *Tracker[V]) Len() int {
	return len(t.entries)
}

// Insert offers a candidate and reports whether it was retained.
func (t *Tracker[V]) Insert(keyword string, value V, score float64) bool {
	if t.capacity <= 0 {
		return false
	}
	candidate := Scored[V]{Keyword: keyword, Value: value, Score: score}

	if existing, ok := t.entries[keyword]; ok {
		if score <= existing.Score {
			return false
		}
		t.entries[keyword] = candidate
		if keyword == t.worst {
			t.findWorst()
		}
		return true
	}

	if len(t.entries) < t.capacity {
		t.entries[keyword] = candidate
		if len(t.entries) == 1 || ranksBelow(candidate, t.entries[t.worst]) {
			t.worst = keyword
		}
		return true
	}

	if !ranksBelow(t.entries[t.worst], candidate) {
		return false
	}
	delete(t.entries, t.worst)
	t.entries[keyword] = candidate
	t.findWorst()
	return true
}

// Results drains the tracker, returning entries by descending score and
// ascending keyword among equal scores.
func (t *Tracker[V]) Results() []Scored[V] {
	results := make([]Scored[V], 0, len(t.entries))
	for _, entry := range t.entries {
		results = append(results, entry)
	}
	slices.SortFunc(results, compare[V])

	clear(t.entries)
	t.worst = ""
	return results
}

// findWorst rescans the retained entries for the lowest-ranked one.
func (t *Tracker[V]) findWorst() {
	first := true
	for keyword, entry := range t.entries {
		if first || ranksBelow(entry, t.entries[t.worst]) {
			t.worst = keyword
			first = false
		}
	}
}

// compare orders entries best first.
func compare[V any](a, b Scored[V]) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Keyword, b.Keyword)
}

// ranksBelow reports whether a is a worse entry than b.
func ranksBelow[V any](a, b Scored[V]) bool {
	return compare(a, b) > 0
}
