// Package index implements an in-memory keyword search index. Arbitrary
// records are tokenized into normalized keywords, each keyword maps to the
// sorted set of keys of the records containing it, and queries resolve
// keywords back to keys through exact, prefix and fuzzy matching.
//
// An Index is not safe for concurrent use; wrap it in a Locked to share it
// between goroutines.
package index

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gcbaptista/go-search-index/config"
	internalErrors "github.com/gcbaptista/go-search-index/internal/errors"
	"github.com/gcbaptista/go-search-index/internal/tokenizer"
	"github.com/gcbaptista/go-search-index/metrics"
	"github.com/gcbaptista/go-search-index/similarity"
)

// ErrInvalidSettings is wrapped by the errors returned from New and NewFunc.
var ErrInvalidSettings = internalErrors.ErrInvalidSettings

// Indexable is a record that can be indexed: it exposes the strings whose
// keywords should find it.
type Indexable interface {
	Strings() []string
}

// Strings is an Indexable over a fixed list of strings.
type Strings []string

func (s Strings) Strings() []string { return s }

// KeywordCount is one row of a Profile.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Keys    int    `json:"keys"`
}

// Index maps keywords to the keys of the records that contain them.
type Index[K comparable] struct {
	settings  config.Settings
	tokenizer *tokenizer.Tokenizer
	compare   func(a, b K) int
	keywords  *keywordStore[K]
	scorer    similarity.Scorer // nil disables the fuzzy fallback
	recorder  metrics.Recorder
	logger    *slog.Logger
}

type options struct {
	logger    *slog.Logger
	recorder  metrics.Recorder
	scorer    similarity.Scorer
	hasScorer bool
}

// Option customizes an Index.
type Option func(*options)

// WithLogger sets the logger for diagnostic events. By default they are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder sets where truncation and fuzzy fallback signals go.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(o *options) { o.recorder = recorder }
}

// WithScorer replaces the scorer selected by Fuzzy.Metric. A nil scorer
// disables the fuzzy fallback.
func WithScorer(scorer similarity.Scorer) Option {
	return func(o *options) {
		o.scorer = scorer
		o.hasScorer = true
	}
}

// New creates an empty index whose keys have a natural order.
func New[K cmp.Ordered](settings config.Settings, opts ...Option) (*Index[K], error) {
	return NewFunc[K](settings, cmp.Compare[K], opts...)
}

// NewFunc creates an empty index ordering keys with compare, which must be
// a strict total order consistent with ==.
func NewFunc[K comparable](settings config.Settings, compare func(a, b K) int, opts ...Option) (*Index[K], error) {
	if compare == nil {
		return nil, fmt.Errorf("invalid index settings: %w",
			internalErrors.NewValidationError("compare", "a key comparison function is required"))
	}

	settings.ExcludeKeywords = slices.Clone(settings.ExcludeKeywords)
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid index settings: %w", err)
	}

	o := options{
		logger:   slog.New(slog.DiscardHandler),
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.recorder == nil {
		o.recorder = metrics.Nop{}
	}

	scorer := o.scorer
	if !o.hasScorer {
		var err error
		scorer, err = similarity.ForMetric(settings.Fuzzy.Metric)
		if err != nil {
			return nil, fmt.Errorf("invalid index settings: %w", err)
		}
	}

	ix := &Index[K]{
		settings: settings,
		tokenizer: tokenizer.New(tokenizer.Options{
			CaseSensitive:        settings.CaseSensitive,
			Delimiters:           effectiveDelimiters(settings),
			MinimumKeywordLength: settings.MinimumKeywordLength,
			MaximumKeywordLength: settings.MaximumKeywordLength,
			MaximumStringLength:  settings.MaximumStringLength,
			ExcludeKeywords:      settings.ExcludeKeywords,
		}),
		compare:  compare,
		keywords: newKeywordStore[K](),
		scorer:   scorer,
		recorder: o.recorder,
		logger:   o.logger,
	}

	if ix.scorer != nil && settings.Fuzzy.PrefixLength == 0 {
		ix.logger.Warn("fuzzy prefix length is 0, every fuzzy fallback scans the whole index",
			"metric", settings.Fuzzy.Metric)
	}

	return ix, nil
}

func effectiveDelimiters(settings config.Settings) string {
	if settings.NoSplit {
		return ""
	}
	return settings.Delimiters
}

// Settings returns the settings in effect, defaults applied.
func (ix *Index[K]) Settings() config.Settings {
	settings := ix.settings
	settings.ExcludeKeywords = slices.Clone(settings.ExcludeKeywords)
	return settings
}

// Len returns the number of distinct keywords in the index.
func (ix *Index[K]) Len() int {
	return ix.keywords.len()
}

// capped returns the posting list of e, cut at MaximumKeysPerKeyword.
// The returned slice aliases index storage and must not be modified.
func (ix *Index[K]) capped(e *entry[K]) []K {
	limit := ix.settings.MaximumKeysPerKeyword
	if len(e.keys) <= limit {
		return e.keys
	}
	dropped := len(e.keys) - limit
	ix.recorder.RecordTruncation(metrics.SiteKeysPerKeyword, dropped)
	ix.logger.Warn("keyword posting list truncated",
		"keyword", e.keyword, "limit", limit, "dropped", dropped)
	return e.keys[:limit]
}

// results copies at most maxResults search results into a fresh, non-nil
// slice.
func (ix *Index[K]) results(keys []K, maxResults int) []K {
	if len(keys) > maxResults {
		ix.truncated(metrics.SiteSearchResults, maxResults, len(keys)-maxResults)
		keys = keys[:maxResults]
	}
	result := make([]K, len(keys))
	copy(result, keys)
	return result
}

// truncated reports that dropped items were cut from a result at site.
// Scans that stop at the first surplus item report a lower bound.
func (ix *Index[K]) truncated(site string, limit, dropped int) {
	ix.recorder.RecordTruncation(site, dropped)
	ix.logger.Debug("result truncated", "site", site, "limit", limit, "dropped", dropped)
}
