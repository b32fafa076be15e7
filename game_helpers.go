package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/rules"
	"github.com/sheikhrachel/go-gol-engine/session"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// errShutdown is returned by the signal watcher to cancel the other goroutines
var errShutdown = errors.New("shutdown requested")

// newSession builds the session described by config, starting from seed
func newSession(config utils.Config, seed []model.Coord) (*session.Session, error) {
	rule, err := rules.Parse(config.Rule)
	if err != nil {
		return nil, errors.Wrap(err, "[newSession] failed to parse rule")
	}

	opts := []session.Option{
		session.WithRule(rule),
		session.WithMaxGenerations(config.MaxGenerations),
	}
	if config.DetectOscillators {
		opts = append(opts, session.WithOscillatorDetection(config.HistorySize))
	}
	return session.New(config.Width, config.Height, seed, opts...)
}

// loadSeed returns the configured seed, or the plaintext pattern in patternFile when one is given
func loadSeed(config utils.Config, patternFile string) ([]model.Coord, error) {
	if patternFile == "" {
		return config.Seed()
	}
	data, err := os.ReadFile(patternFile)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadSeed] failed to read pattern file: %+v", patternFile)
	}
	coords, err := model.ParsePlaintext(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadSeed] failed to parse pattern file: %+v", patternFile)
	}
	return model.Offset(coords, config.PatternOffset.X, config.PatternOffset.Y), nil
}

// watchSignals returns errShutdown on SIGINT/SIGTERM, or nil once ctx is done
func watchSignals(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		return errShutdown
	case <-ctx.Done():
		return nil
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(out, "Rule: %s | Oscillator detection: %v | Max generations: %d\n",
		config.Rule, config.DetectOscillators, config.MaxGenerations)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// gameStatus summarises a grid for the status line
func gameStatus(grid *model.Grid, reason session.HaltReason) string {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	status := "Active"
	switch {
	case livingCells == 0:
		status = "Extinct"
	case reason != session.NotHalted:
		status = fmt.Sprintf("Halted: %s", reason)
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells",
		grid.GetGeneration(), livingCells, density, status, grid.GetBoundingBoxSize())
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, grid *model.Grid, reason session.HaltReason, stats *utils.Stats) {
	fmt.Fprintln(out, gameStatus(grid, reason))
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}
