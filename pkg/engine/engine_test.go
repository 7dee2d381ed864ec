package engine

import (
	"blockindex/pkg/indexer"
	"blockindex/pkg/metrics"
	"bytes"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *metrics.Metrics) {
	t.Helper()
	index := indexer.InvertedIndex{
		"cat":       {0, 2},
		"catalog":   {1},
		"category":  {1, 2},
		"dog":       {3},
		"doghouse":  {3},
		"elephants": {0, 1, 2, 3},
	}
	path := filepath.Join(t.TempDir(), "test.idx")
	require.NoError(t, indexer.SaveIndex(path, index))

	m := metrics.New(prometheus.NewRegistry())
	eg, err := NewEngine(path, 2, m)
	require.NoError(t, err)
	return eg, m
}

func TestEngineSearch(t *testing.T) {
	eg, m := newTestEngine(t)

	postings, err := eg.Search("Cat")
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 2}, postings)

	postings, err = eg.Search("  dog ")
	require.NoError(t, err)
	require.Equal(t, []uint64{3}, postings)

	postings, err = eg.Search("unicorn")
	require.NoError(t, err)
	require.Equal(t, []uint64{}, postings)

	postings, err = eg.Search("")
	require.NoError(t, err)
	require.Equal(t, []uint64{}, postings)

	require.Equal(t, 2.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("miss")))
}

func TestEngineSearchMatchesIndexSearch(t *testing.T) {
	eg, _ := newTestEngine(t)

	for _, query := range []string{"dog", " dog ", "\tDOG\n", "Cat", "cat!", "", "  "} {
		postings, err := eg.Search(query)
		require.NoError(t, err)
		require.Equal(t, eg.Index.Search(query), postings, "query %q", query)
	}
}

func TestEngineMissingIndex(t *testing.T) {
	_, err := NewEngine(filepath.Join(t.TempDir(), "nope.idx"), 16, nil)
	require.ErrorIs(t, err, indexer.ErrIO)
}

func TestEngineSuggest(t *testing.T) {
	eg, _ := newTestEngine(t)

	require.Equal(t, []string{"cat", "catalog", "category"}, eg.Suggest("CAT"))
	require.Equal(t, []string{"dog", "doghouse"}, eg.Suggest("do"))
	require.Equal(t, []string{}, eg.Suggest("z"))
	require.Equal(t, []string{}, eg.Suggest(""))
}

func TestEngineExecute(t *testing.T) {
	eg, _ := newTestEngine(t)

	var out bytes.Buffer
	eg.Execute(&out, "elephants")
	require.Contains(t, out.String(), "Found in 4 blocks: [0, 1, 2, 3]")

	out.Reset()
	eg.Execute(&out, "exit")
	eg.Execute(&out, "   ")
	require.Empty(t, out.String())
}
