package engine

import (
	"blockindex/pkg/indexer"
	"blockindex/pkg/metrics"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrCacheEntryNotFound             = errors.New("cache entry not found")
	ErrCacheSetOpertationNotSupported = errors.New("cache set operation is not supported")
)

type PostingListCache interface {
	Get(term string) ([]uint64, error)
	Set(term string, postings []uint64) error
}

var _ PostingListCache = (*MemoryPostingListCache)(nil)
var _ PostingListCache = (*IndexPostingListCache)(nil)

// MemoryPostingListCache keeps the most recently used posting lists and
// falls through to src on a miss.
type MemoryPostingListCache struct {
	cache   *lru.Cache[string, []uint64]
	src     PostingListCache
	metrics *metrics.Metrics
}

func NewMemoryPostingListCache(size int, src PostingListCache, m *metrics.Metrics) (*MemoryPostingListCache, error) {
	cache, err := lru.New[string, []uint64](size)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &MemoryPostingListCache{
		cache:   cache,
		src:     src,
		metrics: m,
	}, nil
}

func (mc *MemoryPostingListCache) Get(term string) ([]uint64, error) {
	if postings, ok := mc.cache.Get(term); ok {
		mc.metrics.CacheHitsTotal.Inc()
		return postings, nil
	}
	mc.metrics.CacheMissesTotal.Inc()

	if mc.src == nil {
		return nil, ErrCacheEntryNotFound
	}
	postings, err := mc.src.Get(term)
	if err != nil {
		return nil, err
	}
	mc.Set(term, postings)
	return postings, nil
}

func (mc *MemoryPostingListCache) Set(term string, postings []uint64) error {
	_ = mc.cache.Add(term, postings)
	return nil
}

func (mc *MemoryPostingListCache) Len() int {
	return mc.cache.Len()
}

// IndexPostingListCache serves lookups straight from a loaded index.
type IndexPostingListCache struct {
	index indexer.InvertedIndex
}

func NewIndexPostingListCache(index indexer.InvertedIndex) *IndexPostingListCache {
	return &IndexPostingListCache{
		index: index,
	}
}

func (ic *IndexPostingListCache) Get(term string) ([]uint64, error) {
	postings, ok := ic.index[term]
	if !ok {
		return nil, ErrCacheEntryNotFound
	}
	return postings, nil
}

func (ic *IndexPostingListCache) Set(term string, postings []uint64) error {
	return ErrCacheSetOpertationNotSupported
}
