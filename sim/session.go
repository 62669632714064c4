package sim

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-canvas/input"
	"github.com/sheikhrachel/go-gol-canvas/model"
	"github.com/sheikhrachel/go-gol-canvas/render"
	"github.com/sheikhrachel/go-gol-canvas/utils"
)

const (
	StatusActive   = "Active"
	StatusStagnant = "Stagnant"
	StatusExtinct  = "Extinct"
)

// Session wires the grid, its renderer and the pointer controller behind the run/stop, clear and randomize commands
type Session struct {
	grid       *model.Grid
	renderer   *render.Renderer
	controller *input.Controller
	scheduler  *Scheduler
	stats      *utils.Stats
	stagnant   bool
	tickHash   string // board hash right after the last tick
	lastTick   time.Time
	onTick     func()
}

// NewSession builds a rows x cols grid painted on surface and renders it once
func NewSession(rows, cols, cellSize int, surface render.Surface) (*Session, error) {
	grid, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create grid")
	}

	renderer, err := render.NewRenderer(grid, surface, cellSize)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create renderer")
	}

	s := &Session{
		grid:       grid,
		renderer:   renderer,
		controller: input.NewController(grid, renderer),
		stats:      utils.NewStats(),
	}
	s.scheduler = NewScheduler(TickInterval, s.Tick)
	s.renderer.Render()
	return s, nil
}

func (s *Session) Grid() *model.Grid {
	return s.grid
}

func (s *Session) Renderer() *render.Renderer {
	return s.renderer
}

func (s *Session) Controller() *input.Controller {
	return s.controller
}

func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}

func (s *Session) Stats() *utils.Stats {
	return s.stats
}

// OnTick registers a callback run after every tick
func (s *Session) OnTick(fn func()) {
	s.onTick = fn
}

func (s *Session) Running() bool {
	return s.scheduler.Running()
}

// Render repaints the whole surface
func (s *Session) Render() {
	s.renderer.Render()
}

// Tick advances one generation and repaints
func (s *Session) Tick() {
	start := time.Now()

	// the board was edited since the last tick
	if s.grid.GetGridHash() != s.tickHash {
		s.grid.ResetHistory()
	}
	s.grid.NextGeneration()
	s.renderer.Render()

	s.stagnant = s.grid.IsStagnant()
	s.grid.UpdateHistory()
	s.tickHash = s.grid.GetGridHash()

	elapsed := start.Sub(s.lastTick)
	if s.lastTick.IsZero() {
		elapsed = 0
	}
	s.lastTick = start
	s.stats.Update(s.grid.Generation(), s.grid.CountLivingCells(), elapsed)

	if s.onTick != nil {
		s.onTick()
	}
}

// Toggle starts the simulation, locking editing, or stops it and unlocks editing
func (s *Session) Toggle() {
	if s.scheduler.Running() {
		s.scheduler.Stop()
		s.controller.SetEnabled(true)
		return
	}
	s.controller.SetEnabled(false)
	s.controller.PointerUp()
	s.lastTick = time.Time{}
	s.scheduler.Start()
}

// Clear kills every cell and resets the generation; ignored while running
func (s *Session) Clear() {
	if s.Running() {
		return
	}
	s.grid.Clear()
	s.stats.Reset()
	s.resetStagnation()
	s.renderer.Render()
}

// Randomize fills the grid with the given alive probability; ignored while running
func (s *Session) Randomize(probability float64) {
	if s.Running() {
		return
	}
	s.grid.Randomize(probability)
	s.resetStagnation()
	s.renderer.Render()
}

// RandomizeFrom randomizes with a raw slider value, see utils.ParseProbability
func (s *Session) RandomizeFrom(raw string) {
	s.Randomize(utils.ParseProbability(raw))
}

// PlaceGlider drops a glider near the grid center; ignored while running
func (s *Session) PlaceGlider() {
	if s.Running() {
		return
	}
	s.grid.AddGlider(s.grid.Rows()/2-1, s.grid.Cols()/2-1)
	s.resetStagnation()
	s.renderer.Render()
}

// PlaceBlinker drops a horizontal blinker at the grid center; ignored while running
func (s *Session) PlaceBlinker() {
	if s.Running() {
		return
	}
	s.grid.AddBlinker(s.grid.Rows()/2, s.grid.Cols()/2-1)
	s.resetStagnation()
	s.renderer.Render()
}

func (s *Session) resetStagnation() {
	s.stagnant = false
	s.grid.ResetHistory()
}

// Status reports whether the population is extinct, stuck in a short cycle or still active.
// A board edited by the pointer after the last tick is active until a tick says otherwise.
func (s *Session) Status() string {
	switch {
	case s.grid.CountLivingCells() == 0:
		return StatusExtinct
	case s.stagnant && s.grid.GetGridHash() == s.tickHash:
		return StatusStagnant
	default:
		return StatusActive
	}
}

// GenerationText is the generation label shown to the user
func (s *Session) GenerationText() string {
	return fmt.Sprintf("Generation: %d", s.grid.Generation())
}
