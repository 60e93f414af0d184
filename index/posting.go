package index

import "slices"

// Posting lists are slices of keys kept sorted by the index's compare
// function, without duplicates. Sortedness gives deterministic output and
// lets intersections binary-search the larger list.

// insertKey adds key to the sorted list if it is not already present.
func insertKey[K any](keys []K, key K, compare func(a, b K) int) []K {
	i, found := slices.BinarySearchFunc(keys, key, compare)
	if found {
		return keys
	}
	return slices.Insert(keys, i, key)
}

// removeKey deletes key from the sorted list; absent keys are a no-op.
func removeKey[K any](keys []K, key K, compare func(a, b K) int) []K {
	i, found := slices.BinarySearchFunc(keys, key, compare)
	if !found {
		return keys
	}
	return slices.Delete(keys, i, i+1)
}

// intersect returns the keys present in both sorted lists, sorted. It walks
// the shorter list and binary-searches the longer one.
func intersect[K any](a, b []K, compare func(a, b K) int) []K {
	if len(a) > len(b) {
		a, b = b, a
	}
	result := make([]K, 0, len(a))
	for _, key := range a {
		if _, found := slices.BinarySearchFunc(b, key, compare); found {
			result = append(result, key)
		}
	}
	return result
}

// intersects reports whether the sorted lists share at least one key.
func intersects[K any](a, b []K, compare func(a, b K) int) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for _, key := range a {
		if _, found := slices.BinarySearchFunc(b, key, compare); found {
			return true
		}
	}
	return false
}

// union merges sorted lists into one sorted list without duplicates.
func union[K any](lists [][]K, compare func(a, b K) int) []K {
	switch len(lists) {
	case 0:
		return nil
	case 1:
		return lists[0]
	}

	total := 0
	for _, list := range lists {
		total += len(list)
	}
	merged := make([]K, 0, total)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	slices.SortFunc(merged, compare)
	return slices.CompactFunc(merged, func(a, b K) bool { return compare(a, b) == 0 })
}
