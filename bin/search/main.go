package main

import (
	"blockindex/pkg/engine"
	"blockindex/pkg/indexer"
	"fmt"
	"os"
)

func usage(program string) {
	fmt.Printf("Usage: %s <index_file> <search_word>\n", program)
	fmt.Println("  index_file: path to saved inverted index file")
	fmt.Println("  search_word: word to search for in the index")
}

func main() {
	if len(os.Args) != 3 {
		usage(os.Args[0])
		os.Exit(1)
	}

	indexFile, word := os.Args[1], os.Args[2]
	index, err := indexer.LoadIndex(indexFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load inverted index from: %s: %v\n", indexFile, err)
		os.Exit(1)
	}

	engine.PrintSearchResults(os.Stdout, word, index.Search(word))
}
