package index

import (
	"strings"

	"github.com/google/btree"
)

// btreeDegree is the branching factor of the keyword tree.
const btreeDegree = 32

// entry is one keyword and its posting list. Entries are ordered by keyword
// only, so the posting list can change in place.
type entry[K comparable] struct {
	keyword string
	keys    []K
}

// keywordStore maps keywords to posting lists, ordered lexicographically by
// keyword so that prefix ranges are contiguous.
type keywordStore[K comparable] struct {
	tree *btree.BTreeG[*entry[K]]
}

func newKeywordStore[K comparable]() *keywordStore[K] {
	return &keywordStore[K]{
		tree: btree.NewG[*entry[K]](btreeDegree, func(a, b *entry[K]) bool {
			return a.keyword < b.keyword
		}),
	}
}

func (s *keywordStore[K]) len() int {
	return s.tree.Len()
}

func (s *keywordStore[K]) get(keyword string) (*entry[K], bool) {
	return s.tree.Get(&entry[K]{keyword: keyword})
}

// add puts key in keyword's posting list, creating the entry if needed.
func (s *keywordStore[K]) add(keyword string, key K, compare func(a, b K) int) {
	e, ok := s.get(keyword)
	if !ok {
		e = &entry[K]{keyword: keyword}
		s.tree.ReplaceOrInsert(e)
	}
	e.keys = insertKey(e.keys, key, compare)
}

// discard removes key from keyword's posting list and deletes the entry
// once its list is empty.
func (s *keywordStore[K]) discard(keyword string, key K, compare func(a, b K) int) {
	e, ok := s.get(keyword)
	if !ok {
		return
	}
	e.keys = removeKey(e.keys, key, compare)
	if len(e.keys) == 0 {
		s.tree.Delete(e)
	}
}

func (s *keywordStore[K]) clear() {
	s.tree.Clear(false)
}

// ascend visits every entry in keyword order until visit returns false.
func (s *keywordStore[K]) ascend(visit func(e *entry[K]) bool) {
	s.tree.Ascend(visit)
}

// ascendPrefix visits, in keyword order, the entries whose keyword starts
// with prefix until visit returns false.
func (s *keywordStore[K]) ascendPrefix(prefix string, visit func(e *entry[K]) bool) {
	s.tree.AscendGreaterOrEqual(&entry[K]{keyword: prefix}, func(e *entry[K]) bool {
		if !strings.HasPrefix(e.keyword, prefix) {
			return false
		}
		return visit(e)
	})
}
