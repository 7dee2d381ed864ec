package engine

import (
	"blockindex/pkg/indexer"
	"blockindex/pkg/logger"
	"blockindex/pkg/metrics"
	"blockindex/pkg/parser"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

const maxSuggestions = 10

// Engine answers word queries against a persisted inverted index.
type Engine struct {
	IndexPath string
	Index     indexer.InvertedIndex
	Cache     PostingListCache
	terms     []string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewEngine(indexPath string, cacheSize int, m *metrics.Metrics) (*Engine, error) {
	index, err := indexer.LoadIndex(indexPath)
	if err != nil {
		return nil, err
	}
	return NewEngineFromIndex(indexPath, index, cacheSize, m)
}

func NewEngineFromIndex(indexPath string, index indexer.InvertedIndex, cacheSize int, m *metrics.Metrics) (*Engine, error) {
	if m == nil {
		m = metrics.New(nil)
	}
	memCache, err := NewMemoryPostingListCache(cacheSize, NewIndexPostingListCache(index), m)
	if err != nil {
		return nil, err
	}

	eg := &Engine{
		IndexPath: indexPath,
		Index:     index,
		Cache:     memCache,
		terms:     index.Terms(),
		metrics:   m,
		logger:    logger.WithComponent("engine"),
	}
	m.IndexedWords.Set(float64(len(index)))
	eg.logger.Info("engine ready", "index", indexPath, "words", len(index), "cache_size", cacheSize)
	return eg, nil
}

// Search returns the posting list of word. Unknown and empty words yield
// an empty list.
func (eg *Engine) Search(word string) ([]uint64, error) {
	key := parser.Normalize(word)
	if key == "" {
		return []uint64{}, nil
	}

	postings, err := eg.Cache.Get(key)
	if errors.Is(err, ErrCacheEntryNotFound) {
		eg.metrics.ObserveSearch(false)
		return []uint64{}, nil
	}
	if err != nil {
		return nil, err
	}
	eg.metrics.ObserveSearch(true)
	return postings, nil
}

// Suggest returns up to maxSuggestions indexed words starting with prefix.
func (eg *Engine) Suggest(prefix string) []string {
	prefix = parser.Normalize(prefix)
	if prefix == "" {
		return []string{}
	}
	suggestions := []string{}
	for i := sort.SearchStrings(eg.terms, prefix); i < len(eg.terms); i++ {
		if !strings.HasPrefix(eg.terms[i], prefix) || len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, eg.terms[i])
	}
	return suggestions
}

func (eg *Engine) Execute(out io.Writer, line string) {
	word := strings.TrimSpace(line)
	if word == "" || isExit(word) {
		return
	}
	postings, err := eg.Search(word)
	if err != nil {
		eg.logger.Error("search failed", "word", word, "error", err)
		return
	}
	PrintSearchResults(out, word, postings)
}

func (eg *Engine) complete(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{}
	for _, term := range eg.Suggest(d.GetWordBeforeCursor()) {
		suggests = append(suggests, prompt.Suggest{Text: term})
	}
	return suggests
}

func isExit(in string) bool {
	return in == "exit" || in == "quit"
}

// Run starts an interactive prompt until the user types exit or quit.
func (eg *Engine) Run(out io.Writer) {
	exit := func(in string, breakline bool) bool {
		return breakline && isExit(strings.TrimSpace(in))
	}

	p := prompt.New(
		func(line string) { eg.Execute(out, line) },
		eg.complete,
		prompt.OptionPrefix("search> "),
		prompt.OptionTitle("wordcount search"),
		prompt.OptionSetExitCheckerOnInput(exit),
	)
	p.Run()
}
