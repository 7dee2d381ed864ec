package indexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertedIndexSearch(t *testing.T) {
	index := InvertedIndex{"cat": {0, 2}, "dog": {1}}

	require.Equal(t, []uint64{0, 2}, index.Search("cat"))
	require.Equal(t, []uint64{0, 2}, index.Search("CaT"))
	require.Equal(t, []uint64{}, index.Search("bird"))
	require.Equal(t, []uint64{}, index.Search("cat!"))
	require.Equal(t, []uint64{}, index.Search(""))
	require.Equal(t, []uint64{1}, index.Search(" dog\n"))
	require.Equal(t, []uint64{}, index.Search(" \t "))
	require.Equal(t, []string{"cat", "dog"}, index.Terms())
	require.Equal(t, 3, index.PostingCount())
}

func TestInvertedIndexValidate(t *testing.T) {
	require.NoError(t, InvertedIndex{"a": {0, 1, 2}}.Validate(3))
	require.Error(t, InvertedIndex{"a": {0, 3}}.Validate(3))
	require.Error(t, InvertedIndex{"a": {1, 1}}.Validate(3))
	require.Error(t, InvertedIndex{"a": {2, 1}}.Validate(3))
	require.NoError(t, InvertedIndex{}.Validate(0))
}

func TestInvertedIndexEqual(t *testing.T) {
	a := InvertedIndex{"x": {1, 2}, "y": {}}
	require.True(t, a.Equal(InvertedIndex{"y": nil, "x": {1, 2}}))
	require.False(t, a.Equal(InvertedIndex{"x": {1, 2}}))
	require.False(t, a.Equal(InvertedIndex{"x": {1, 3}, "y": {}}))
}
