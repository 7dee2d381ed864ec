package main

import (
	"blockindex/pkg/config"
	"blockindex/pkg/engine"
	"blockindex/pkg/indexer"
	"blockindex/pkg/logger"
	"blockindex/pkg/metrics"
	"blockindex/pkg/utils/sys"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func usage(w io.Writer, program string) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  Build index: %s [flags] build [<filename> <threads> <block_size_mb> <index_file>]\n", program)
	fmt.Fprintf(w, "  Search:      %s [flags] search [<index_file>] <search_word>\n", program)
	fmt.Fprintf(w, "  Legacy:      %s [flags] <filename> <threads> <block_size_mb> [search_word]\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parameters:")
	fmt.Fprintln(w, "  threads: 1, 2, or 8")
	fmt.Fprintln(w, "  block_size_mb: 16, 32, or 64")
	fmt.Fprintln(w, "  omitted build and search arguments come from the config source, index, workers and blockSizeMB")
}

type app struct {
	cfg     *config.Config
	stdout  io.Writer
	metrics *metrics.Metrics
}

// options merges the positional thread and block size arguments into the
// loaded config and validates them.
func (a *app) options(threads, blockMB string) (indexer.Options, error) {
	workers, err := strconv.Atoi(threads)
	if err != nil {
		return indexer.Options{}, fmt.Errorf("%w: threads %q is not a number", indexer.ErrConfig, threads)
	}
	mb, err := strconv.Atoi(blockMB)
	if err != nil {
		return indexer.Options{}, fmt.Errorf("%w: block size %q is not a number", indexer.ErrConfig, blockMB)
	}
	a.cfg.Workers = workers
	a.cfg.BlockSizeMB = mb
	return a.cfg.Options()
}

func (a *app) banner(title string, fields ...string) {
	fmt.Fprintf(a.stdout, "=== %s ===\n", title)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(a.stdout, "%s: %s\n", fields[i], fields[i+1])
	}
	fmt.Fprintln(a.stdout, "===============================")
}

func (a *app) build(filename, threads, blockMB, indexFile string) error {
	opts, err := a.options(threads, blockMB)
	if err != nil {
		return err
	}
	return a.buildWith(opts, filename, indexFile)
}

// buildConfigured builds from the config source into the config index.
func (a *app) buildConfigured() error {
	if a.cfg.Source == "" || a.cfg.Index == "" {
		return fmt.Errorf("%w: build without arguments needs source and index in the config", indexer.ErrConfig)
	}
	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	return a.buildWith(opts, a.cfg.Source, a.cfg.Index)
}

func (a *app) buildWith(opts indexer.Options, filename, indexFile string) error {
	a.banner("BUILDING INVERTED INDEX",
		"File", filename,
		"Threads", strconv.Itoa(opts.Workers),
		"Block size", fmt.Sprintf("%d MB", opts.BlockSize.MB()),
		"Index file", indexFile)

	wc := indexer.NewWordCount(opts).WithMetrics(a.metrics)
	if err := wc.LoadFile(filename); err != nil {
		return err
	}
	engine.PrintWordCounts(a.stdout, wc.Frequencies())

	if err := wc.SaveIndex(indexFile); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "\nInverted index saved to: %s\n", indexFile)
	return nil
}

func (a *app) search(indexFile, word string) error {
	if indexFile == "" {
		return fmt.Errorf("%w: no index file given or configured", indexer.ErrConfig)
	}
	a.banner("SEARCHING INVERTED INDEX",
		"Index file", indexFile,
		"Search word", word)

	eg, err := engine.NewEngine(indexFile, a.cfg.CacheSize, a.metrics)
	if err != nil {
		return err
	}
	postings, err := eg.Search(word)
	if err != nil {
		return err
	}
	engine.PrintSearchResults(a.stdout, word, postings)
	return nil
}

func (a *app) legacy(filename, threads, blockMB, word string) error {
	opts, err := a.options(threads, blockMB)
	if err != nil {
		return err
	}

	a.banner("MULTITHREADED WORD COUNT",
		"File", filename,
		"Threads", strconv.Itoa(opts.Workers),
		"Block size", fmt.Sprintf("%d MB", opts.BlockSize.MB()))

	wc := indexer.NewWordCount(opts).WithMetrics(a.metrics)
	if err := wc.LoadFile(filename); err != nil {
		return err
	}
	engine.PrintWordCounts(a.stdout, wc.Frequencies())

	if word != "" {
		engine.PrintSearchResults(a.stdout, word, wc.Search(word))
	} else {
		engine.PrintInvertedIndex(a.stdout, wc.Index())
	}
	return nil
}

func (a *app) dispatch(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	switch mode := args[0]; {
	case mode == "build" && len(args) == 5:
		return true, a.build(args[1], args[2], args[3], args[4])
	case mode == "build" && len(args) == 1:
		return true, a.buildConfigured()
	case mode == "search" && len(args) == 3:
		return true, a.search(args[1], args[2])
	case mode == "search" && len(args) == 2:
		return true, a.search(a.cfg.Index, args[1])
	case mode != "build" && mode != "search" && (len(args) == 3 || len(args) == 4):
		word := ""
		if len(args) == 4 {
			word = args[3]
		}
		return true, a.legacy(args[0], args[1], args[2], word)
	}
	return false, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	program := "wordcount"
	if len(args) > 0 {
		program, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	memProfile := fs.String("memprofile", "", "write a heap profile to this file")
	traceFile := fs.String("trace", "", "write a runtime trace to this file")
	fs.Usage = func() {
		usage(stderr, program)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.SetupWriter(stderr, cfg.Logging.Level, cfg.Logging.Format)

	if *traceFile != "" {
		stop, err := sys.StartTrace(*traceFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer stop()
	}

	reg := prometheus.NewRegistry()
	a := &app{
		cfg:     cfg,
		stdout:  stdout,
		metrics: metrics.New(reg),
	}
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, metrics.Handler(reg)); err != nil {
				slog.Error("metrics listener stopped", "addr", cfg.Metrics.Addr, "error", err)
			}
		}()
	}

	ok, err := a.dispatch(fs.Args())
	if !ok {
		usage(stdout, program)
		return 1
	}
	if err != nil {
		if errors.Is(err, indexer.ErrConfig) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Failed: %v\n", err)
		}
		return 1
	}

	if *memProfile != "" {
		if err := sys.WriteMemoryProfile(*memProfile); err != nil {
			fmt.Fprintf(stderr, "Error: could not write memory profile: %v\n", err)
			return 1
		}
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
