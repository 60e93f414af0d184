package store

import "sync"

// RecordStore keeps the records behind the keys of an index, so a record can
// be removed or replaced with exactly the strings it was indexed with.
type RecordStore[K comparable, R any] struct {
	mu      sync.RWMutex
	records map[K]R
}

// NewRecordStore creates an empty store.
func NewRecordStore[K comparable, R any]() *RecordStore[K, R] {
	return &RecordStore[K, R]{records: make(map[K]R)}
}

// Put stores record under key and returns the record it replaced, if any.
func (s *RecordStore[K, R]) Put(key K, record R) (previous R, replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, replaced = s.records[key]
	s.records[key] = record
	return previous, replaced
}

// Get returns the record stored under key.
func (s *RecordStore[K, R]) Get(key K) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	return record, ok
}

// Delete removes key and returns the record it held.
func (s *RecordStore[K, R]) Delete(key K) (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if ok {
		delete(s.records, key)
	}
	return record, ok
}

// Len returns the number of stored records.
func (s *RecordStore[K, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
