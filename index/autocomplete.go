package index

import (
	"strings"

	"github.com/gcbaptista/go-search-index/config"
	"github.com/gcbaptista/go-search-index/metrics"
)

// Autocomplete suggests completions for query using the configured
// autocomplete type and result limit.
func (ix *Index[K]) Autocomplete(query string) []string {
	return ix.AutocompleteWith(ix.settings.AutocompleteType, ix.settings.MaximumAutocompleteResults, query)
}

// AutocompleteWith returns up to maxResults completions of query using
// autocompleteType. Keyword completions are whole indexed keywords; Global
// and Context completions are the preceding query keywords followed by a
// completed last keyword, separated by single spaces. The result is never
// nil.
func (ix *Index[K]) AutocompleteWith(autocompleteType config.AutocompleteType, maxResults int, query string) []string {
	if maxResults <= 0 {
		return []string{}
	}

	switch autocompleteType {
	case config.AutocompleteKeyword:
		return ix.autocompleteKeyword(query, maxResults)
	case config.AutocompleteGlobal:
		return ix.autocompleteLast(query, maxResults, false)
	case config.AutocompleteContext:
		return ix.autocompleteLast(query, maxResults, true)
	default:
		ix.logger.Warn("unknown autocomplete type", "autocomplete_type", autocompleteType)
		return []string{}
	}
}

// autocompleteKeyword completes the whole query as one keyword, falling
// back to the single closest fuzzy keyword.
func (ix *Index[K]) autocompleteKeyword(query string, maxResults int) []string {
	keyword, ok := ix.tokenizer.Keyword(query)
	if !ok {
		return []string{}
	}

	completions := ix.completions(keyword, nil, nil, maxResults)
	if len(completions) == 0 {
		if e, ok := ix.substitute(keyword, nil); ok {
			completions = append(completions, e.keyword)
		}
	}
	return completions
}

// autocompleteLast completes the last query keyword. In context mode only
// keywords sharing a key with every preceding keyword qualify; when the
// preceding keywords match nothing together, completion is unconstrained.
func (ix *Index[K]) autocompleteLast(query string, maxResults int, context bool) []string {
	preceding, last, ok := ix.tokenizer.Split(query)
	if !ok {
		return []string{}
	}

	skip := make(map[string]struct{}, len(preceding))
	for _, keyword := range preceding {
		skip[keyword] = struct{}{}
	}

	var constraint []K
	if context && len(preceding) > 0 {
		constraint = ix.and(preceding)
	}

	completions := ix.completions(last, constraint, skip, maxResults)
	if len(completions) == 0 && ix.fuzzy() {
		for _, candidate := range ix.candidates(last, constraint, maxResults) {
			if _, ok := skip[candidate.Keyword]; !ok {
				completions = append(completions, candidate.Keyword)
			}
		}
	}

	if len(preceding) == 0 {
		return completions
	}
	lead := strings.Join(preceding, " ") + " "
	for i, completion := range completions {
		completions[i] = lead + completion
	}
	return completions
}

// completions returns, in keyword order, up to maxResults indexed keywords
// starting with prefix. Keywords in skip are ignored, and with a non-empty
// constraint so are keywords sharing no key with it.
func (ix *Index[K]) completions(prefix string, constraint []K, skip map[string]struct{}, maxResults int) []string {
	completions := make([]string, 0, min(maxResults, 16))
	ix.keywords.ascendPrefix(prefix, func(e *entry[K]) bool {
		if _, ok := skip[e.keyword]; ok {
			return true
		}
		if len(constraint) > 0 && !intersects(e.keys, constraint, ix.compare) {
			return true
		}
		if len(completions) == maxResults {
			ix.truncated(metrics.SiteAutocompleteResults, maxResults, 1)
			return false
		}
		completions = append(completions, e.keyword)
		return true
	})
	return completions
}
