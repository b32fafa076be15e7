package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to the JSON configuration file")
		interactive = flag.Bool("interactive", false, "edit and run the board in a full-screen terminal UI")
		pattern     = flag.String("pattern", "", fmt.Sprintf("built-in seed pattern %v", model.PatternNames()))
		patternFile = flag.String("pattern-file", "", "plaintext pattern file to seed the board with")
		rule        = flag.String("rule", "", "birth/survival rule, e.g. B3/S23")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "gol: ", log.LstdFlags)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatalf("%+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if *interactive {
		config.Interactive = true
	}
	if *pattern != "" {
		config.Pattern = *pattern
	}
	if *rule != "" {
		config.Rule = *rule
	}
	if err = config.Validate(); err != nil {
		logger.Fatalf("%+v", err)
	}

	seed, err := loadSeed(config, *patternFile)
	if err != nil {
		logger.Fatalf("%+v", err)
	}
	sess, err := newSession(config, seed)
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(base)

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		return watchSignals(ctx)
	})
	eg.Go(func() error {
		defer cancel()
		if !config.Interactive {
			return runTerminal(ctx, sess, config, os.Stdout)
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "[main] failed to create screen")
		}
		return runInteractive(ctx, screen, sess, config, seed)
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Fatalf("%+v", err)
	}
}
