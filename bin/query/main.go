package main

import (
	"blockindex/pkg/config"
	"blockindex/pkg/engine"
	"blockindex/pkg/logger"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <index_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if flag.NArg() == 1 {
		cfg.Index = flag.Arg(0)
	}
	if cfg.Index == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ng, err := engine.NewEngine(cfg.Index, cfg.CacheSize, nil)
	if err != nil {
		log.Fatalf("failed to load inverted index: %v", err)
	}

	fmt.Println("Type a word to search, exit to quit.")
	ng.Run(os.Stdout)
}
