package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-gol-canvas/ui"
	"github.com/sheikhrachel/go-gol-canvas/utils"
)

const windowTitle = "Game of Life"

func main() {
	app := cli.NewApp()
	app.Name = "go-gol-canvas"
	app.Usage = "draw and run Conway's Game of Life"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "config.json", Usage: "path to a JSON config file"},
		cli.BoolFlag{Name: "headless", Usage: "run without a window and write a PNG snapshot"},
		cli.IntFlag{Name: "generations", Usage: "generations to run in headless mode (0 runs until interrupted)"},
		cli.StringFlag{Name: "prob", Usage: "alive probability for the initial randomize, 0.0 to 1.0"},
		cli.StringFlag{Name: "snapshot", Usage: "PNG path written when headless mode ends"},
		cli.BoolFlag{Name: "terminal", Usage: "print the board every generation in headless mode"},
		cli.Int64Flag{Name: "seed", Usage: "random seed, 0 seeds from the clock"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		return runHeadless(config)
	}
	return runWindow(config)
}

// loadConfig reads the config file, falling back to defaults, then applies flags
func loadConfig(c *cli.Context) (utils.Config, error) {
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("prob") {
		config.RandomProbability = c.String("prob")
	}
	if c.IsSet("snapshot") {
		config.SnapshotPath = c.String("snapshot")
	}
	if c.IsSet("terminal") {
		config.ShowTerminal = c.Bool("terminal")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}

	return config, config.Validate()
}

func runWindow(config utils.Config) error {
	game, err := ui.NewGame(config.Rows, config.Cols, config.CellSize, config.Probability())
	if err != nil {
		return err
	}
	if config.Seed != 0 {
		game.Session().Grid().Seed(config.Seed)
	}

	width, height := game.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(windowTitle)

	return ebiten.RunGame(game)
}
