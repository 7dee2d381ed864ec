package indexer

import (
	"blockindex/pkg/logger"
	"blockindex/pkg/metrics"
	"blockindex/pkg/parser"
	"blockindex/pkg/utils/sys"
	"log/slog"
	"os"
	"time"
)

// WordCount builds the frequency table and inverted index of a corpus.
// It is not safe for concurrent use.
type WordCount struct {
	opts    Options
	freqs   FrequencyTable
	index   InvertedIndex
	blocks  int
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewWordCount falls back to one worker and 16 MB blocks when opts holds
// unsupported values.
func NewWordCount(opts Options) *WordCount {
	opts.Workers = ClampWorkers(opts.Workers)
	if opts.blockBytes == 0 && !opts.BlockSize.Valid() {
		slog.Warn("unsupported block size, falling back to 16 MB", "bytes", int(opts.BlockSize))
		opts.BlockSize = BlockSize16MB
	}

	return &WordCount{
		opts:    opts,
		freqs:   FrequencyTable{},
		index:   InvertedIndex{},
		metrics: metrics.New(nil),
		logger:  logger.WithComponent("wordcount"),
	}
}

// WithMetrics routes pipeline counters to m instead of the private,
// unregistered set.
func (wc *WordCount) WithMetrics(m *metrics.Metrics) *WordCount {
	wc.metrics = m
	return wc
}

func (wc *WordCount) Options() Options {
	return wc.opts
}

// LoadFile reads the whole file into memory and rebuilds both tables from
// it. On failure the previous results are already cleared.
func (wc *WordCount) LoadFile(filename string) error {
	wc.Clear()

	start := time.Now()
	content, err := os.ReadFile(filename)
	if err != nil {
		return ioError("read corpus", filename, err)
	}
	wc.metrics.ObservePhase("read", time.Since(start).Seconds())
	wc.logger.Info("corpus read", "file", filename, "bytes", len(content), "elapsed", time.Since(start))

	wc.Load(content)
	return nil
}

// Load partitions, aggregates and merges content, replacing any previous
// results.
func (wc *WordCount) Load(content []byte) {
	wc.Clear()

	start := time.Now()
	blocks := parser.Blocks(content, wc.opts.blockLen())
	wc.metrics.ObservePhase("partition", time.Since(start).Seconds())

	start = time.Now()
	partials := Aggregate(blocks, wc.opts.Workers)
	wc.metrics.ObservePhase("aggregate", time.Since(start).Seconds())
	sys.LogMemoryUsage(wc.logger)

	start = time.Now()
	wc.freqs, wc.index = MergePartialIndexes(partials...)
	wc.blocks = len(blocks)
	wc.metrics.ObservePhase("merge", time.Since(start).Seconds())

	stats := wc.Stats()
	wc.metrics.BlocksProcessed.Add(float64(stats.BlockCount))
	wc.metrics.TokensCounted.Add(float64(stats.TotalWords))
	wc.metrics.IndexedWords.Set(float64(len(wc.index)))

	wc.logger.Info("corpus indexed",
		"workers", wc.opts.Workers,
		"block_bytes", wc.opts.blockLen(),
		"blocks", stats.BlockCount,
		"unique_words", stats.UniqueWords,
		"total_words", stats.TotalWords,
		"postings", stats.PostingCount)
}

func (wc *WordCount) Frequencies() FrequencyTable {
	return wc.freqs
}

func (wc *WordCount) Index() InvertedIndex {
	return wc.index
}

// BlockCount is zero after LoadIndex since blocks are not persisted.
func (wc *WordCount) BlockCount() int {
	return wc.blocks
}

func (wc *WordCount) UniqueWordCount() int {
	return wc.freqs.Unique()
}

func (wc *WordCount) TotalWordCount() uint64 {
	return wc.freqs.Total()
}

func (wc *WordCount) Stats() IndexStats {
	return NewIndexStats(wc.blocks, wc.freqs, wc.index)
}

func (wc *WordCount) Search(word string) []uint64 {
	postings := wc.index.Search(word)
	wc.metrics.ObserveSearch(len(postings) > 0)
	return postings
}

func (wc *WordCount) HasIndex() bool {
	return len(wc.index) > 0
}

func (wc *WordCount) SaveIndex(filename string) error {
	start := time.Now()
	if err := SaveIndex(filename, wc.index); err != nil {
		return err
	}
	wc.metrics.ObservePhase("save", time.Since(start).Seconds())
	wc.logger.Info("index saved", "file", filename, "words", len(wc.index), "elapsed", time.Since(start))
	return nil
}

// LoadIndex replaces the in-memory index with the one stored in filename.
// The frequency table is cleared because it is not persisted. On failure
// the current state is left untouched.
func (wc *WordCount) LoadIndex(filename string) error {
	start := time.Now()
	index, err := LoadIndex(filename)
	if err != nil {
		return err
	}

	wc.Clear()
	wc.index = index
	wc.metrics.ObservePhase("load", time.Since(start).Seconds())
	wc.metrics.IndexedWords.Set(float64(len(index)))
	wc.logger.Info("index loaded", "file", filename, "words", len(index), "elapsed", time.Since(start))
	return nil
}

func (wc *WordCount) Clear() {
	wc.freqs = FrequencyTable{}
	wc.index = InvertedIndex{}
	wc.blocks = 0
}
