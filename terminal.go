package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/session"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// runTerminal auto-advances the session on a plain terminal until it halts or ctx is done
func runTerminal(ctx context.Context, sess *session.Session, config utils.Config, out io.Writer) error {
	var (
		renderer      = &model.TerminalRenderer{Out: out}
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
	)

	displayGameInfo(out, config, sess.Grid())
	if err := renderer.Display(sess.Grid()); err != nil {
		return err
	}
	if !config.AutoAdvance {
		return nil
	}

	reason, err := sess.RunUntilHalt(ctx, config.FrameRate, func(g *model.Grid, reason session.HaltReason) error {
		frameStart := time.Now()
		stats.Update(g.GetGeneration(), g.CountLivingCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := renderer.Clear(); err != nil {
			return err
		}
		displayGameStatus(out, g, reason, stats)
		return renderer.Display(g)
	})
	if err != nil {
		return err
	}

	if reason == session.NotHalted {
		fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
	} else {
		fmt.Fprintf(out, "\n🏁 Stopped: %s\n", reason)
	}
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		sess.Grid().GetGeneration(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	return nil
}
