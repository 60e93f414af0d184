// Package select2 shapes search results into the JSON envelopes expected by
// the Select2 widget: flat pages of {id, text} records and option groups.
package select2

import (
	internalErrors "github.com/gcbaptista/go-search-index/internal/errors"
)

// ErrMismatchedLengths is returned when keys and texts do not pair up.
var ErrMismatchedLengths = internalErrors.ErrMismatchedLengths

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Record is one selectable option.
type Record[K any] struct {
	ID   K      `json:"id"`
	Text string `json:"text"`
}

// Pagination tells the widget whether another page can be requested.
type Pagination struct {
	More bool `json:"more"`
}

// Results is one page of options.
type Results[K any] struct {
	Results    []Record[K] `json:"results"`
	Pagination Pagination  `json:"pagination"`
}

// OptGroup is a labelled group of options.
type OptGroup[K any] struct {
	Text     string      `json:"text"`
	Children []Record[K] `json:"children"`
}

// GroupedResults is a list of option groups.
type GroupedResults[K any] struct {
	Results []OptGroup[K] `json:"results"`
}

// Records pairs keys with their display texts.
func Records[K any](keys []K, texts []string) ([]Record[K], error) {
	if len(keys) != len(texts) {
		return nil, internalErrors.NewMismatchedLengthsError("records", len(keys), len(texts))
	}

	records := make([]Record[K], len(keys))
	for i, key := range keys {
		records[i] = Record[K]{ID: key, Text: texts[i]}
	}
	return records, nil
}

// Paginate returns page (1-based) of the paired keys and texts. Pages below
// 1 are treated as 1; perPage defaults to DefaultPerPage and is capped at
// MaxPerPage.
func Paginate[K any](keys []K, texts []string, page, perPage int) (Results[K], error) {
	records, err := Records(keys, texts)
	if err != nil {
		return Results[K]{}, err
	}

	// Set defaults
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	start := min((page-1)*perPage, len(records))
	end := min(start+perPage, len(records))

	return Results[K]{
		Results:    records[start:end],
		Pagination: Pagination{More: end < len(records)},
	}, nil
}

// Group builds one option group per label from the parallel slices. Empty
// groups are omitted.
func Group[K any](groups []string, keys [][]K, texts [][]string) (GroupedResults[K], error) {
	if len(groups) != len(keys) {
		return GroupedResults[K]{}, internalErrors.NewMismatchedLengthsError("groups", len(groups), len(keys))
	}
	if len(keys) != len(texts) {
		return GroupedResults[K]{}, internalErrors.NewMismatchedLengthsError("group texts", len(keys), len(texts))
	}

	grouped := GroupedResults[K]{Results: make([]OptGroup[K], 0, len(groups))}
	for i, label := range groups {
		children, err := Records(keys[i], texts[i])
		if err != nil {
			return GroupedResults[K]{}, err
		}
		if len(children) == 0 {
			continue
		}
		grouped.Results = append(grouped.Results, OptGroup[K]{Text: label, Children: children})
	}
	return grouped, nil
}
