package index

import (
	"sync"

	"github.com/gcbaptista/go-search-index/config"
)

// Locked wraps an Index with a read-write mutex: searches run concurrently,
// mutations are exclusive.
type Locked[K comparable] struct {
	mu    sync.RWMutex
	index *Index[K]
}

// NewLocked wraps ix. ix must not be used directly afterwards.
func NewLocked[K comparable](ix *Index[K]) *Locked[K] {
	return &Locked[K]{index: ix}
}

func (l *Locked[K]) Insert(key K, record Indexable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Insert(key, record)
}

func (l *Locked[K]) Remove(key K, record Indexable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Remove(key, record)
}

func (l *Locked[K]) Replace(key K, oldRecord, newRecord Indexable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Replace(key, oldRecord, newRecord)
}

func (l *Locked[K]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Clear()
}

func (l *Locked[K]) Search(query string) []K {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Search(query)
}

func (l *Locked[K]) SearchWith(searchType config.SearchType, maxResults int, query string) []K {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.SearchWith(searchType, maxResults, query)
}

func (l *Locked[K]) Autocomplete(query string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Autocomplete(query)
}

func (l *Locked[K]) AutocompleteWith(autocompleteType config.AutocompleteType, maxResults int, query string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.AutocompleteWith(autocompleteType, maxResults, query)
}

func (l *Locked[K]) FuzzyKeyword(keyword string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.FuzzyKeyword(keyword)
}

func (l *Locked[K]) Profile(n int) []KeywordCount {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Profile(n)
}

func (l *Locked[K]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Len()
}
