package index

import (
	"cmp"
	"slices"

	"github.com/gcbaptista/go-search-index/config"
	"github.com/gcbaptista/go-search-index/internal/tokenizer"
)

// Search returns the keys matching query using the configured search type
// and result limit.
func (ix *Index[K]) Search(query string) []K {
	return ix.SearchWith(ix.settings.SearchType, ix.settings.MaximumSearchResults, query)
}

// SearchWith returns up to maxResults keys matching query using
// searchType. The result is never nil. Keys are in ascending order except
// for Or searches, which rank keys by the number of query keywords they
// match.
func (ix *Index[K]) SearchWith(searchType config.SearchType, maxResults int, query string) []K {
	if maxResults <= 0 {
		return []K{}
	}

	switch searchType {
	case config.SearchKeyword:
		return ix.searchKeyword(query, maxResults)
	case config.SearchAnd:
		return ix.searchAnd(query, maxResults)
	case config.SearchOr:
		return ix.searchOr(query, maxResults)
	case config.SearchLive:
		return ix.searchLive(query, maxResults)
	default:
		ix.logger.Warn("unknown search type", "search_type", searchType)
		return []K{}
	}
}

// searchKeyword treats the whole query as one keyword.
func (ix *Index[K]) searchKeyword(query string, maxResults int) []K {
	keyword, ok := ix.tokenizer.Keyword(query)
	if !ok {
		return []K{}
	}
	return ix.results(ix.lookup(keyword), maxResults)
}

// searchAnd returns the keys matching every query keyword.
func (ix *Index[K]) searchAnd(query string, maxResults int) []K {
	keywords := ix.tokenizer.Keywords(query, tokenizer.Searching)
	return ix.results(ix.and(keywords), maxResults)
}

// searchOr returns the keys matching any query keyword, the keys matching
// the most keywords first and ties in key order.
func (ix *Index[K]) searchOr(query string, maxResults int) []K {
	// A substituted keyword may resolve to one the query already holds;
	// each indexed keyword is tallied once.
	hits := make(map[K]int)
	resolved := make(map[*entry[K]]struct{})
	for _, keyword := range ix.tokenizer.Keywords(query, tokenizer.Searching) {
		e, ok := ix.resolve(keyword)
		if !ok {
			continue
		}
		if _, seen := resolved[e]; seen {
			continue
		}
		resolved[e] = struct{}{}
		for _, key := range ix.capped(e) {
			hits[key]++
		}
	}

	ranked := make([]K, 0, len(hits))
	for key := range hits {
		ranked = append(ranked, key)
	}
	slices.SortFunc(ranked, func(a, b K) int {
		if c := cmp.Compare(hits[b], hits[a]); c != 0 {
			return c
		}
		return ix.compare(a, b)
	})
	return ix.results(ranked, maxResults)
}

// searchLive is an And search whose last keyword also matches every
// indexed keyword it prefixes, for search-as-you-type.
func (ix *Index[K]) searchLive(query string, maxResults int) []K {
	preceding, last, ok := ix.tokenizer.Split(query)
	if !ok {
		return []K{}
	}

	var constraint []K
	if len(preceding) > 0 {
		constraint = ix.and(preceding)
		if len(constraint) == 0 {
			return []K{}
		}
	}

	var lists [][]K
	ix.keywords.ascendPrefix(last, func(e *entry[K]) bool {
		lists = append(lists, ix.capped(e))
		return true
	})
	if len(lists) == 0 && ix.fuzzy() {
		for _, candidate := range ix.candidates(last, constraint, ix.settings.MaximumAutocompleteResults) {
			lists = append(lists, ix.capped(candidate.Value))
		}
	}

	matches := union(lists, ix.compare)
	if len(preceding) > 0 {
		matches = intersect(constraint, matches, ix.compare)
	}
	return ix.results(matches, maxResults)
}

// lookup returns the capped posting list of keyword. A keyword missing from
// the index is replaced by its closest fuzzy match when fuzzy matching is
// enabled. The result aliases index storage.
func (ix *Index[K]) lookup(keyword string) []K {
	if e, ok := ix.resolve(keyword); ok {
		return ix.capped(e)
	}
	return nil
}

// resolve returns the entry of keyword, or of its fuzzy substitute.
func (ix *Index[K]) resolve(keyword string) (*entry[K], bool) {
	if e, ok := ix.keywords.get(keyword); ok {
		return e, true
	}
	return ix.substitute(keyword, nil)
}

// and intersects the posting lists of keywords, smallest list first. It
// returns nil when there are no keywords or any keyword matches nothing.
func (ix *Index[K]) and(keywords []string) []K {
	lists := make([][]K, 0, len(keywords))
	for _, keyword := range keywords {
		keys := ix.lookup(keyword)
		if len(keys) == 0 {
			return nil
		}
		lists = append(lists, keys)
	}
	if len(lists) == 0 {
		return nil
	}

	slices.SortStableFunc(lists, func(a, b []K) int { return cmp.Compare(len(a), len(b)) })
	result := lists[0]
	for _, keys := range lists[1:] {
		result = intersect(result, keys, ix.compare)
		if len(result) == 0 {
			return nil
		}
	}
	return result
}
