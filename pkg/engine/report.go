package engine

import (
	"blockindex/pkg/indexer"
	"fmt"
	"io"
	"strings"
)

const (
	topWords       = 10
	listedWords    = 20
	listedPostings = 10
)

func formatPostings(postings []uint64) string {
	parts := make([]string, 0, len(postings))
	for _, id := range postings {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}

func PrintWordCounts(w io.Writer, freqs indexer.FrequencyTable) {
	fmt.Fprintln(w, "\n=== WORD COUNT RESULTS ===")
	fmt.Fprintf(w, "Unique words: %d\n", freqs.Unique())
	fmt.Fprintf(w, "Total words: %d\n", freqs.Total())
	fmt.Fprintln(w, "=========================")

	fmt.Fprintf(w, "\nTop %d most frequent words:\n", topWords)
	for i, wc := range freqs.Top(topWords) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
}

func PrintInvertedIndex(w io.Writer, index indexer.InvertedIndex) {
	fmt.Fprintln(w, "\n=== INVERTED INDEX ===")
	fmt.Fprintf(w, "Total indexed words: %d\n", len(index))
	fmt.Fprintln(w, "======================")

	fmt.Fprintf(w, "\nFirst %d words in index:\n", listedWords)
	terms := index.Terms()
	for _, term := range terms[:min(listedWords, len(terms))] {
		postings := index[term]
		more := ""
		if len(postings) > listedPostings {
			more = "..."
		}
		fmt.Fprintf(w, "%s: blocks [%s%s]\n", term, formatPostings(postings[:min(listedPostings, len(postings))]), more)
	}
}

func PrintSearchResults(w io.Writer, word string, postings []uint64) {
	fmt.Fprintln(w, "\n=== SEARCH RESULTS ===")
	fmt.Fprintf(w, "Word: %q\n", word)
	if len(postings) == 0 {
		fmt.Fprintln(w, "Not found in any blocks")
	} else {
		fmt.Fprintf(w, "Found in %d blocks: [%s]\n", len(postings), formatPostings(postings))
	}
	fmt.Fprintln(w, "======================")
}
