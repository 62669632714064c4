package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-canvas/rules"
)

// DefaultProbability is the alive probability used when none is given
const DefaultProbability = 0.5

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// ErrInvalidDimension is returned when a grid is created with a non-positive size
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid represents the game board: a fixed rows x cols matrix of cells and its generation counter
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	next       [][]bool // Back buffer for the next generation
	generation int
	history    []string // Store recent grid states for cycle detection
	rng        *rand.Rand
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: allocCells(rows, cols),
		next:  allocCells(rows, cols),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func allocCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns the number of transitions since creation or the last Clear
func (g *Grid) Generation() int {
	return g.generation
}

// Seed reseeds the random source used by Randomize
func (g *Grid) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set sets a cell to alive (true) or dead (false); out-of-bounds writes are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if g.InBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; out-of-bounds reads are dead
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = false
		}
	}
	g.generation = 0
	g.history = nil
}

// Randomize sets each cell alive independently with the given probability
func (g *Grid) Randomize(probability float64) {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = g.rng.Float64() < probability
		}
	}
}

// countNeighbors counts living Moore neighbors; cells outside the grid count as dead
func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// NextGeneration advances the grid by one generation.
// Every new state is computed from the current buffer before the buffers are swapped.
func (g *Grid) NextGeneration() {
	for row := range g.rows {
		for col := range g.cols {
			g.next[row][col] = rules.ApplyConwayRules(g.countNeighbors(row, col), g.cells[row][col])
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// ResetHistory forgets the recorded states, so cycle detection starts over from the current board
func (g *Grid) ResetHistory() {
	g.history = nil
}

// IsStagnant reports whether the current state matches one of the last three recorded states,
// which covers still lifes and period 2 and 3 oscillators
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// AddGlider adds a glider pattern with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, cell := range line {
			g.Set(row+dr, col+dc, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.Set(row, col, true)
	g.Set(row, col+1, true)
	g.Set(row, col+2, true)
}
