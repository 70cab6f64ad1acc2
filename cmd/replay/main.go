package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/osse101/PouchSim_Go/internal/config"
	"github.com/osse101/PouchSim_Go/internal/logger"
)

func main() {
	itemsPath := flag.String("items", config.DefaultItemsConfigPath, "Path to the item catalog")
	animated := flag.Bool("animated", false, "Use animated icons where an item has one")
	brokenFrom := flag.Int("broken-from", -1, "Mark slots from this index on as broken (-1 for none)")
	logLevel := flag.String("log-level", logger.LogLevelWarn, "Log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: replay [flags] [scenario.json ...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Replays scenarios and prints the resulting pouch as JSON.\n")
		fmt.Fprintf(flag.CommandLine.Output(), "With no arguments every scenario in %s is replayed.\n\n", config.DefaultScenarioDir)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := logger.DefaultConfig()
	cfg.Level = *logLevel
	logger.InitLoggerWithWriter(cfg, os.Stderr)

	paths := flag.Args()
	if len(paths) == 0 {
		matches, err := filepath.Glob(filepath.Join(config.DefaultScenarioDir, "*.json"))
		if err != nil {
			log.Fatalf("Failed to list scenarios: %v", err)
		}
		paths = matches
	}
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	r, err := newReplayer(context.Background(), *itemsPath, *animated, *brokenFrom)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	failed := 0
	for _, path := range paths {
		if err := r.replayFile(context.Background(), path, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
