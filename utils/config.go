package utils

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-canvas/model"
)

// ErrInvalidConfig is returned by Validate for unusable dimensions
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows              int    `json:"rows"`
	Cols              int    `json:"cols"`
	CellSize          int    `json:"cell_size"`
	RandomProbability string `json:"random_probability"` // Raw slider value, see ParseProbability
	Seed              int64  `json:"seed"`                // 0 seeds from the clock
	MaxGenerations    int    `json:"max_generations"`     // Headless stop, 0 runs until interrupted
	ShowTerminal      bool   `json:"show_terminal"`
	SnapshotPath      string `json:"snapshot_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:              20,
		Cols:              40,
		CellSize:          20,
		RandomProbability: "0.5",
		MaxGenerations:    100,
		SnapshotPath:      "snapshot.png",
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the grid and cell dimensions are positive
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got rows: %d, cols: %d", c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive, got: %d", c.CellSize)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got: %d", c.MaxGenerations)
	}
	return nil
}

// Probability returns the parsed random probability
func (c Config) Probability() float64 {
	return ParseProbability(c.RandomProbability)
}

// ParseProbability reads a slider-style probability.
// Empty or unparsable input falls back to model.DefaultProbability without an error; values are clamped to [0, 1].
func ParseProbability(raw string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(p) {
		return model.DefaultProbability
	}
	return math.Max(0, math.Min(1, p))
}
