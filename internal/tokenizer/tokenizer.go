package tokenizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Context tells the tokenizer whether a string is being indexed or searched.
// Normalization is the same in both; only the whole-string rules differ.
type Context int

const (
	Indexing Context = iota
	Searching
)

// Options configures a Tokenizer. Lengths are measured in runes.
type Options struct {
	CaseSensitive        bool
	Delimiters           string // Empty means strings are never split
	MinimumKeywordLength int
	MaximumKeywordLength int
	MaximumStringLength  int // Whole indexed strings up to this length become keywords; 0 disables
	ExcludeKeywords      []string
}

// Tokenizer turns raw strings into normalized keywords.
type Tokenizer struct {
	caseSensitive bool
	delimiters    map[rune]struct{}
	minLen        int
	maxLen        int
	maxStringLen  int
	exclude       map[string]struct{}
}

// New creates a Tokenizer. Exclude keywords are normalized the same way
// as indexed strings so they match regardless of case.
func New(opts Options) *Tokenizer {
	t := &Tokenizer{
		caseSensitive: opts.CaseSensitive,
		minLen:        opts.MinimumKeywordLength,
		maxLen:        opts.MaximumKeywordLength,
		maxStringLen:  opts.MaximumStringLength,
		exclude:       make(map[string]struct{}, len(opts.ExcludeKeywords)),
	}
	if opts.Delimiters != "" {
		t.delimiters = make(map[rune]struct{}, len(opts.Delimiters))
		for _, r := range opts.Delimiters {
			t.delimiters[r] = struct{}{}
		}
	}
	for _, keyword := range opts.ExcludeKeywords {
		t.exclude[t.Normalize(keyword)] = struct{}{}
	}
	return t
}

// Splits reports whether strings are split on delimiters.
func (t *Tokenizer) Splits() bool {
	return t.delimiters != nil
}

// Normalize applies Unicode NFC normalization and, unless the tokenizer is
// case-sensitive, case folding.
func (t *Tokenizer) Normalize(s string) string {
	s = norm.NFC.String(s)
	if t.caseSensitive {
		return s
	}
	// A Caser holds state, so one is created per call.
	return cases.Fold().String(s)
}

// Keyword normalizes the whole string as a single keyword, ignoring
// delimiters. It reports false for empty, excluded or too long strings.
func (t *Tokenizer) Keyword(s string) (string, bool) {
	keyword := strings.TrimSpace(t.Normalize(s))
	if keyword == "" || t.excluded(keyword) {
		return "", false
	}
	limit := t.maxLen
	if t.maxStringLen > limit {
		limit = t.maxStringLen
	}
	if n := utf8.RuneCountInString(keyword); n < t.minLen || n > limit {
		return "", false
	}
	return keyword, true
}

// Keywords returns the de-duplicated keywords of s in first-occurrence order.
func (t *Tokenizer) Keywords(s string, ctx Context) []string {
	return dedupe(t.tokens(s, ctx))
}

// Split separates the search keywords of s into the preceding keywords and
// the last (possibly partial) keyword. ok is false when s has no keywords.
func (t *Tokenizer) Split(s string) (preceding []string, last string, ok bool) {
	tokens := t.tokens(s, Searching)
	if len(tokens) == 0 {
		return nil, "", false
	}
	return dedupe(tokens[:len(tokens)-1]), tokens[len(tokens)-1], true
}

// tokens returns every keyword of s in order, duplicates included.
func (t *Tokenizer) tokens(s string, ctx Context) []string {
	tokens := make([]string, 0) // Initialize as empty slice, not nil
	normalized := t.Normalize(s)
	whole := strings.TrimSpace(normalized)
	if whole == "" {
		return tokens
	}

	add := func(keyword string) {
		if !t.excluded(keyword) {
			tokens = append(tokens, keyword)
		}
	}

	if !t.Splits() {
		switch {
		case ctx == Searching:
			add(whole)
		case t.maxStringLen > 0:
			if t.withinStringLength(whole) {
				add(whole)
			}
		case t.withinKeywordLength(whole):
			add(whole)
		}
		return tokens
	}

	split := strings.FieldsFunc(normalized, func(r rune) bool {
		_, ok := t.delimiters[r]
		return ok
	})
	for _, token := range split {
		if t.withinKeywordLength(token) {
			add(token)
		}
	}

	if ctx == Indexing && t.maxStringLen > 0 && t.withinStringLength(whole) {
		add(whole)
	}

	return tokens
}

// dedupe removes repeated keywords, keeping the first occurrence.
func dedupe(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		result = append(result, keyword)
	}
	return result
}

func (t *Tokenizer) withinKeywordLength(keyword string) bool {
	n := utf8.RuneCountInString(keyword)
	return n >= t.minLen && n <= t.maxLen
}

func (t *Tokenizer) withinStringLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= t.minLen && n <= t.maxStringLen
}

func (t *Tokenizer) excluded(keyword string) bool {
	_, ok := t.exclude[keyword]
	return ok
}
