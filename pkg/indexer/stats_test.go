package indexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencyTableTop(t *testing.T) {
	ft := FrequencyTable{"the": 9, "cat": 4, "sat": 4, "mat": 1, "on": 4, "a": 2}

	require.Equal(t, []WordFreq{
		{"the", 9},
		{"cat", 4},
		{"on", 4},
	}, ft.Top(3))

	require.Len(t, ft.Top(100), len(ft))
	require.Empty(t, ft.Top(0))
	require.Empty(t, FrequencyTable{}.Top(10))

	require.Equal(t, 6, ft.Unique())
	require.Equal(t, uint64(24), ft.Total())
}

func TestIndexStats(t *testing.T) {
	freqs := FrequencyTable{"a": 3, "b": 1}
	index := InvertedIndex{"a": {0, 1}, "b": {1}}
	stats := NewIndexStats(2, freqs, index)
	require.Equal(t, IndexStats{BlockCount: 2, UniqueWords: 2, TotalWords: 4, PostingCount: 3}, stats)
}
