package indexer

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// MergePartialIndexes folds worker results into the global frequency table
// and inverted index. Partials are visited in slice order.
func MergePartialIndexes(partials ...PartialIndex) (FrequencyTable, InvertedIndex) {
	unique := 0
	for _, partial := range partials {
		unique = max(unique, len(partial.Freqs))
	}

	freqs := make(FrequencyTable, unique)
	for _, partial := range partials {
		for word, count := range partial.Freqs {
			freqs[word] += count
		}
	}

	merged := make(map[string]*roaring64.Bitmap, unique)
	for _, partial := range partials {
		for word, bm := range partial.Postings {
			if global, ok := merged[word]; ok {
				global.Or(bm)
			} else {
				merged[word] = bm.Clone()
			}
		}
	}

	index := make(InvertedIndex, len(merged))
	for word, bm := range merged {
		index[word] = sortedPostings(bm.ToArray())
	}

	return freqs, index
}

// sortedPostings guarantees ascending order without duplicates regardless
// of where the ids came from.
func sortedPostings(ids []uint64) []uint64 {
	slices.Sort(ids)
	return slices.Compact(ids)
}
