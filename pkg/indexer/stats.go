package indexer

import (
	"cmp"
	"slices"

	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
)

type WordFreq struct {
	Word  string
	Count uint64
}

// Top returns the k most frequent words, highest count first. Equal counts
// are ordered alphabetically so the result is deterministic.
func (ft FrequencyTable) Top(k int) []WordFreq {
	if k <= 0 {
		return []WordFreq{}
	}

	// Heap root is the weakest entry kept so far.
	comparator := func(a, b WordFreq) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return cmp.Compare(b.Word, a.Word)
	}

	q := pq.NewWith(comparator)
	for word, count := range ft {
		item := WordFreq{Word: word, Count: count}
		if q.Size() < k {
			q.Enqueue(item)
			continue
		}
		weakest, _ := q.Peek()
		if comparator(weakest, item) < 0 {
			q.Dequeue()
			q.Enqueue(item)
		}
	}

	top := make([]WordFreq, 0, q.Size())
	for !q.Empty() {
		item, _ := q.Dequeue()
		top = append(top, item)
	}
	slices.Reverse(top)
	return top
}

type IndexStats struct {
	BlockCount   int
	UniqueWords  int
	TotalWords   uint64
	PostingCount int
}

func NewIndexStats(blockCount int, freqs FrequencyTable, index InvertedIndex) IndexStats {
	return IndexStats{
		BlockCount:   blockCount,
		UniqueWords:  freqs.Unique(),
		TotalWords:   freqs.Total(),
		PostingCount: index.PostingCount(),
	}
}
