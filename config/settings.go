// Package config provides configuration structures for the search index.
// It defines tokenization settings, result caps, fuzzy matching options and
// the default search and autocomplete strategies.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	internalErrors "github.com/gcbaptista/go-search-index/internal/errors"
)

// SearchType selects the algorithm used by Search.
type SearchType string

const (
	SearchKeyword SearchType = "keyword" // Whole query is a single keyword
	SearchAnd     SearchType = "and"     // Keys containing every query keyword
	SearchOr      SearchType = "or"      // Keys containing any query keyword, ranked by hits
	SearchLive    SearchType = "live"    // And-search with the last keyword completed as a prefix
)

// AutocompleteType selects the algorithm used by Autocomplete.
type AutocompleteType string

const (
	AutocompleteKeyword AutocompleteType = "keyword" // Complete the whole query as one keyword
	AutocompleteGlobal  AutocompleteType = "global"  // Complete the last keyword against the whole index
	AutocompleteContext AutocompleteType = "context" // Complete the last keyword among keys matching the preceding keywords
)

// Metric names the string-similarity strategy used by the fuzzy fallback.
type Metric string

const (
	MetricNone                  Metric = "none"
	MetricLevenshtein           Metric = "levenshtein"
	MetricDamerauLevenshtein    Metric = "damerau_levenshtein"
	MetricOSADamerauLevenshtein Metric = "osa_damerau_levenshtein"
	MetricLCS                   Metric = "lcs"
	MetricJaro                  Metric = "jaro"
	MetricJaroWinkler           Metric = "jaro_winkler"
	MetricSorensenDice          Metric = "sorensen_dice"
	MetricJaccard               Metric = "jaccard"
	MetricCosine                Metric = "cosine"
	MetricQgram                 Metric = "qgram"
)

// Metrics lists every metric accepted by Validate, except MetricNone.
var Metrics = []Metric{
	MetricLevenshtein,
	MetricDamerauLevenshtein,
	MetricOSADamerauLevenshtein,
	MetricLCS,
	MetricJaro,
	MetricJaroWinkler,
	MetricSorensenDice,
	MetricJaccard,
	MetricCosine,
	MetricQgram,
}

// DefaultDelimiters is the delimiter set used to split strings into keywords
// when none is configured.
const DefaultDelimiters = " \t\n\r!\"&()*+,-./:;<=>?[\\]^`{|}~"

// FuzzySettings controls the fuzzy fallback used when exact or prefix
// lookups find nothing.
type FuzzySettings struct {
	Metric       Metric  `json:"metric" yaml:"metric"`               // Similarity strategy; "" or "none" disables fuzzy matching
	MinimumScore float64 `json:"minimum_score" yaml:"minimumScore"`  // Candidates scoring below this are ignored (0..1)
	PrefixLength int     `json:"prefix_length" yaml:"prefixLength"`  // Only keywords sharing this many leading runes are scored; 0 scans the whole index
}

// Enabled reports whether a similarity metric is configured.
func (f FuzzySettings) Enabled() bool {
	return f.Metric != "" && f.Metric != MetricNone
}

// Settings contains all configuration options for a search index.
// Settings are copied when an index is built and cannot change afterwards.
type Settings struct {
	CaseSensitive bool `json:"case_sensitive" yaml:"caseSensitive"`

	// Delimiters is the set of runes strings are split on. When NoSplit is
	// set, strings are never split and a whole query is one keyword.
	Delimiters string `json:"delimiters" yaml:"delimiters"`
	NoSplit    bool   `json:"no_split" yaml:"noSplit"`

	MinimumKeywordLength int `json:"minimum_keyword_length" yaml:"minimumKeywordLength"` // Shorter keywords are dropped
	MaximumKeywordLength int `json:"maximum_keyword_length" yaml:"maximumKeywordLength"` // Longer keywords are dropped

	// MaximumStringLength keeps a whole indexed string as an extra keyword
	// when it is at most this many runes long, enabling full-field
	// autocompletion. 0 disables it.
	MaximumStringLength int `json:"maximum_string_length" yaml:"maximumStringLength"`

	// ExcludeKeywords are never indexed nor searched (e.g. stop words).
	ExcludeKeywords []string `json:"exclude_keywords" yaml:"excludeKeywords"`

	MaximumAutocompleteResults int `json:"maximum_autocomplete_results" yaml:"maximumAutocompleteResults"`
	MaximumSearchResults       int `json:"maximum_search_results" yaml:"maximumSearchResults"`
	MaximumKeysPerKeyword      int `json:"maximum_keys_per_keyword" yaml:"maximumKeysPerKeyword"`

	SearchType       SearchType       `json:"search_type" yaml:"searchType"`
	AutocompleteType AutocompleteType `json:"autocomplete_type" yaml:"autocompleteType"`

	Fuzzy FuzzySettings `json:"fuzzy" yaml:"fuzzy"`
}

// Default returns the recommended settings: case-insensitive, split on
// whitespace and punctuation, Live search, Context autocomplete and a
// Levenshtein fuzzy fallback restricted to a three-rune prefix.
func Default() Settings {
	return Settings{
		CaseSensitive:              false,
		Delimiters:                 DefaultDelimiters,
		MinimumKeywordLength:       1,
		MaximumKeywordLength:       24,
		MaximumStringLength:        24,
		MaximumAutocompleteResults: 5,
		MaximumSearchResults:       100,
		MaximumKeysPerKeyword:      40_000,
		SearchType:                 SearchLive,
		AutocompleteType:           AutocompleteContext,
		Fuzzy: FuzzySettings{
			Metric:       MetricLevenshtein,
			MinimumScore: 0.3,
			PrefixLength: 3,
		},
	}
}

// ApplyDefaults fills zero-valued fields for which zero is never a
// meaningful setting. Fields where zero has a meaning (MaximumStringLength,
// Fuzzy) are left untouched; start from Default() to get those.
func (settings *Settings) ApplyDefaults() {
	defaults := Default()

	if settings.Delimiters == "" && !settings.NoSplit {
		settings.Delimiters = defaults.Delimiters
	}
	if settings.MinimumKeywordLength == 0 {
		settings.MinimumKeywordLength = defaults.MinimumKeywordLength
	}
	if settings.MaximumKeywordLength == 0 {
		settings.MaximumKeywordLength = defaults.MaximumKeywordLength
	}
	if settings.MaximumAutocompleteResults == 0 {
		settings.MaximumAutocompleteResults = defaults.MaximumAutocompleteResults
	}
	if settings.MaximumSearchResults == 0 {
		settings.MaximumSearchResults = defaults.MaximumSearchResults
	}
	if settings.MaximumKeysPerKeyword == 0 {
		settings.MaximumKeysPerKeyword = defaults.MaximumKeysPerKeyword
	}
	if settings.SearchType == "" {
		settings.SearchType = defaults.SearchType
	}
	if settings.AutocompleteType == "" {
		settings.AutocompleteType = defaults.AutocompleteType
	}
	if settings.Fuzzy.Metric == "" {
		settings.Fuzzy.Metric = MetricNone
	}

	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.ExcludeKeywords == nil {
		settings.ExcludeKeywords = []string{}
	}
}

// Validate reports every problem with the settings, joined into one error.
// Each problem is a *ValidationError matching ErrInvalidSettings.
func (settings *Settings) Validate() error {
	var errs []error
	invalid := func(field, format string, args ...any) {
		errs = append(errs, internalErrors.NewValidationError(field, fmt.Sprintf(format, args...)))
	}

	if settings.MinimumKeywordLength < 1 {
		invalid("minimum_keyword_length", "must be at least 1, got %d", settings.MinimumKeywordLength)
	}
	if settings.MaximumKeywordLength < settings.MinimumKeywordLength {
		invalid("maximum_keyword_length", "must be at least minimum_keyword_length (%d), got %d",
			settings.MinimumKeywordLength, settings.MaximumKeywordLength)
	}
	if settings.MaximumStringLength < 0 {
		invalid("maximum_string_length", "cannot be negative, got %d", settings.MaximumStringLength)
	}
	if !settings.NoSplit && settings.Delimiters == "" {
		invalid("delimiters", "cannot be empty unless no_split is set")
	}
	if !utf8.ValidString(settings.Delimiters) {
		invalid("delimiters", "must be valid UTF-8")
	}
	if settings.MaximumAutocompleteResults < 1 {
		invalid("maximum_autocomplete_results", "must be at least 1, got %d", settings.MaximumAutocompleteResults)
	}
	if settings.MaximumSearchResults < 1 {
		invalid("maximum_search_results", "must be at least 1, got %d", settings.MaximumSearchResults)
	}
	if settings.MaximumKeysPerKeyword < 1 {
		invalid("maximum_keys_per_keyword", "must be at least 1, got %d", settings.MaximumKeysPerKeyword)
	}

	switch settings.SearchType {
	case SearchKeyword, SearchAnd, SearchOr, SearchLive:
	default:
		invalid("search_type", "must be one of keyword, and, or, live, got '%s'", settings.SearchType)
	}
	switch settings.AutocompleteType {
	case AutocompleteKeyword, AutocompleteGlobal, AutocompleteContext:
	default:
		invalid("autocomplete_type", "must be one of keyword, global, context, got '%s'", settings.AutocompleteType)
	}

	if settings.Fuzzy.Enabled() && !isKnownMetric(settings.Fuzzy.Metric) {
		errs = append(errs, internalErrors.NewUnknownMetricError(string(settings.Fuzzy.Metric)))
	}
	if score := settings.Fuzzy.MinimumScore; !(score >= 0 && score <= 1) { // rejects NaN
		invalid("fuzzy.minimum_score", "must be within [0, 1], got %g", settings.Fuzzy.MinimumScore)
	}
	if settings.Fuzzy.PrefixLength < 0 {
		invalid("fuzzy.prefix_length", "cannot be negative, got %d", settings.Fuzzy.PrefixLength)
	}

	errs = append(errs, checkExcludeKeywords(settings.ExcludeKeywords)...)

	return errors.Join(errs...)
}

// checkExcludeKeywords checks for empty or duplicate exclude keywords
func checkExcludeKeywords(keywords []string) []error {
	var errs []error
	seen := make(map[string]bool)

	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			errs = append(errs, internalErrors.NewValidationError("exclude_keywords", "keyword cannot be empty or whitespace-only"))
			continue
		}
		if seen[keyword] {
			errs = append(errs, internalErrors.NewValidationError("exclude_keywords", "duplicate keyword '"+keyword+"'"))
		}
		seen[keyword] = true
	}

	return errs
}

func isKnownMetric(metric Metric) bool {
	for _, m := range Metrics {
		if m == metric {
			return true
		}
	}
	return false
}
