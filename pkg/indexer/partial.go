package indexer

import (
	"blockindex/pkg/parser"
	"blockindex/pkg/utils/stream"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"
)

// PartialIndex is the output of one worker: word counts and the set of
// block ids each word appeared in, over the worker's own blocks only.
type PartialIndex struct {
	Freqs    map[string]uint64
	Postings map[string]*roaring64.Bitmap
	Blocks   int
}

func NewPartialIndex() PartialIndex {
	return PartialIndex{
		Freqs:    map[string]uint64{},
		Postings: map[string]*roaring64.Bitmap{},
	}
}

func (p PartialIndex) AddBlock(block parser.Block) {
	for token := range parser.Tokens(block.Data) {
		p.Freqs[token]++
		bm, ok := p.Postings[token]
		if !ok {
			bm = roaring64.New()
			p.Postings[token] = bm
		}
		bm.Add(block.ID)
	}
}

// BuildPartialIndex drains producer in order into a fresh PartialIndex.
func BuildPartialIndex(producer stream.Producer[parser.Block]) PartialIndex {
	index := NewPartialIndex()
	for {
		block, ok := producer.Produce()
		if !ok {
			break
		}
		index.AddBlock(block)
		index.Blocks++
	}
	return index
}

// BlockRange is the half-open range [Start, End) of blocks given to one
// worker.
type BlockRange struct {
	Start int
	End   int
}

func (r BlockRange) Empty() bool {
	return r.Start >= r.End
}

// SplitRanges gives each worker ceil(total/workers) contiguous blocks.
// Trailing workers get empty ranges when there are not enough blocks.
func SplitRanges(total, workers int) []BlockRange {
	if workers <= 0 {
		workers = 1
	}
	perWorker := (total + workers - 1) / workers
	ranges := make([]BlockRange, 0, workers)
	for w := range workers {
		start := min(w*perWorker, total)
		end := min(start+perWorker, total)
		ranges = append(ranges, BlockRange{Start: start, End: end})
	}
	return ranges
}

// Aggregate runs one goroutine per non-empty range and returns after all of
// them finish. The result holds one PartialIndex per worker, in worker
// order; idle workers contribute an empty one.
func Aggregate(blocks []parser.Block, workers int) []PartialIndex {
	ranges := SplitRanges(len(blocks), workers)
	partials := make([]PartialIndex, len(ranges))

	var g errgroup.Group
	for w, r := range ranges {
		if r.Empty() {
			partials[w] = NewPartialIndex()
			continue
		}
		g.Go(func() error {
			producer := stream.NewArrayProducer(blocks[r.Start:r.End])
			partials[w] = BuildPartialIndex(producer)
			return nil
		})
	}
	// Workers never fail; Wait is only the join point.
	g.Wait()

	return partials
}
