package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-canvas/render"
	"github.com/sheikhrachel/go-gol-canvas/sim"
	"github.com/sheikhrachel/go-gol-canvas/utils"
)

// initializeGame sets up a randomized session painted on an in-memory image
func initializeGame(config utils.Config) (*sim.Session, *render.ImageSurface, error) {
	surface := render.NewImageSurface()
	session, err := sim.NewSession(config.Rows, config.Cols, config.CellSize, surface)
	if err != nil {
		return nil, nil, err
	}
	if config.Seed != 0 {
		session.Grid().Seed(config.Seed)
	}
	session.Randomize(config.Probability())
	return session, surface, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, session *sim.Session) {
	grid := session.Grid()
	fmt.Printf("Grid: %dx%d | Cell size: %dpx | Probability: %.2f | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), config.CellSize, config.Probability(), grid.CountLivingCells())
	if config.MaxGenerations > 0 {
		fmt.Printf("Running %d generations\n", config.MaxGenerations)
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(session *sim.Session) {
	var (
		grid       = session.Grid()
		stats      = session.Stats()
		population = grid.CountLivingCells()
		density    = utils.Density(population, grid.Rows()*grid.Cols())
	)

	fmt.Printf("%s | Living: %d | Density: %.1f%% | Status: %s\n",
		session.GenerationText(), population, density, session.Status())
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// showTerminal redraws the board on a cleared terminal
func showTerminal(terminal *render.TerminalDisplay, board render.Board) error {
	if err := terminal.Clear(); err != nil {
		return errors.Wrap(err, "[showTerminal] failed to clear terminal")
	}
	return errors.Wrap(terminal.Display(board), "[showTerminal] failed to draw board")
}

// runHeadless drives the session with the timer scheduler until the generation limit or an interrupt,
// then writes a PNG snapshot of the rendered surface
func runHeadless(config utils.Config) error {
	session, surface, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(config, session)

	terminal := render.NewTerminalDisplay(os.Stdout)
	session.OnTick(func() {
		if config.ShowTerminal {
			if err := showTerminal(terminal, session.Grid()); err != nil {
				fmt.Println("Error displaying grid:", err)
			}
		}
		displayGameStatus(session)

		if config.MaxGenerations > 0 && session.Grid().Generation() >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			session.Scheduler().Stop()
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		defer close(done)
		return session.Scheduler().Run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
		case <-done:
		}
		return nil
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "[runHeadless] simulation loop failed")
	}

	stats := session.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		session.Grid().Generation(), time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)

	if config.SnapshotPath == "" {
		return nil
	}
	if err = surface.SavePNG(config.SnapshotPath); err != nil {
		return err
	}
	fmt.Printf("Snapshot written to %s\n", config.SnapshotPath)
	return nil
}
