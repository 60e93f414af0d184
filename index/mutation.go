package index

import (
	"github.com/gcbaptista/go-search-index/internal/tokenizer"
	"github.com/gcbaptista/go-search-index/internal/topk"
)

// Insert indexes record under key. Inserting the same pair twice is a no-op.
func (ix *Index[K]) Insert(key K, record Indexable) {
	for _, keyword := range ix.recordKeywords(record) {
		ix.keywords.add(keyword, key, ix.compare)
	}
}

// Remove undoes Insert. record must produce the same strings it produced
// when it was inserted; keywords it no longer produces keep the key.
// Keywords left without keys are dropped.
func (ix *Index[K]) Remove(key K, record Indexable) {
	for _, keyword := range ix.recordKeywords(record) {
		ix.keywords.discard(keyword, key, ix.compare)
	}
}

// Replace re-indexes key from oldRecord to newRecord. Keywords produced by
// both records are left untouched.
func (ix *Index[K]) Replace(key K, oldRecord, newRecord Indexable) {
	oldKeywords := ix.recordKeywords(oldRecord)
	newKeywords := ix.recordKeywords(newRecord)

	kept := make(map[string]struct{}, len(newKeywords))
	for _, keyword := range newKeywords {
		kept[keyword] = struct{}{}
	}
	removed := make(map[string]struct{}, len(oldKeywords))
	for _, keyword := range oldKeywords {
		if _, ok := kept[keyword]; !ok {
			ix.keywords.discard(keyword, key, ix.compare)
		}
		removed[keyword] = struct{}{}
	}
	for _, keyword := range newKeywords {
		if _, ok := removed[keyword]; !ok {
			ix.keywords.add(keyword, key, ix.compare)
		}
	}
}

// Clear removes every keyword and key. Settings are kept.
func (ix *Index[K]) Clear() {
	ix.keywords.clear()
}

// Profile returns the n keywords with the most keys, most keys first and
// ties in keyword order.
func (ix *Index[K]) Profile(n int) []KeywordCount {
	tracker := topk.New[int](n)
	ix.keywords.ascend(func(e *entry[K]) bool {
		tracker.Insert(e.keyword, len(e.keys), float64(len(e.keys)))
		return true
	})

	scored := tracker.Results()
	profile := make([]KeywordCount, 0, len(scored))
	for _, s := range scored {
		profile = append(profile, KeywordCount{Keyword: s.Keyword, Keys: s.Value})
	}
	return profile
}

// recordKeywords returns the distinct indexing keywords of every string of
// record.
func (ix *Index[K]) recordKeywords(record Indexable) []string {
	if record == nil {
		return nil
	}

	var keywords []string
	seen := make(map[string]struct{})
	for _, s := range record.Strings() {
		for _, keyword := range ix.tokenizer.Keywords(s, tokenizer.Indexing) {
			if _, ok := seen[keyword]; ok {
				continue
			}
			seen[keyword] = struct{}{}
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}
