package indexer

import (
	"blockindex/pkg/parser"
	"fmt"
	"maps"
	"slices"
)

// InvertedIndex maps a normalized word to the ascending ids of the blocks
// it occurs in.
type InvertedIndex map[string][]uint64

// Search returns the posting list for word, or an empty list when the word
// is not indexed or blank.
func (idx InvertedIndex) Search(word string) []uint64 {
	key := parser.Normalize(word)
	if key == "" {
		return []uint64{}
	}
	postings, ok := idx[key]
	if !ok {
		return []uint64{}
	}
	return postings
}

func (idx InvertedIndex) Terms() []string {
	return slices.Sorted(maps.Keys(idx))
}

func (idx InvertedIndex) PostingCount() int {
	total := 0
	for _, postings := range idx {
		total += len(postings)
	}
	return total
}

// Validate checks every posting list is strictly ascending and references
// a block below blockCount.
func (idx InvertedIndex) Validate(blockCount uint64) error {
	for word, postings := range idx {
		for i, id := range postings {
			if id >= blockCount {
				return fmt.Errorf("word %q: block %d out of range [0, %d)", word, id, blockCount)
			}
			if i > 0 && postings[i-1] >= id {
				return fmt.Errorf("word %q: postings not strictly ascending at %d", word, i)
			}
		}
	}
	return nil
}

func (idx InvertedIndex) Equal(other InvertedIndex) bool {
	return maps.EqualFunc(idx, other, func(a, b []uint64) bool {
		return slices.Equal(a, b)
	})
}

// FrequencyTable maps a normalized word to its total occurrence count.
type FrequencyTable map[string]uint64

func (ft FrequencyTable) Unique() int {
	return len(ft)
}

func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		total += count
	}
	return total
}
