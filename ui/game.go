package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-gol-canvas/input"
	"github.com/sheikhrachel/go-gol-canvas/sim"
)

const (
	statusBarHeight = 36
	statusPadding   = 6
	lineHeight      = 14

	probabilityStep = 0.05
)

var statusBackground = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
var statusTextColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}

// command is a keyboard shortcut standing in for a button
type command int

const (
	cmdNone command = iota
	cmdToggle
	cmdClear
	cmdRandomize
	cmdProbabilityUp
	cmdProbabilityDown
	cmdGlider
	cmdBlinker
)

type keyBinding struct {
	key ebiten.Key
	cmd command
}

// keyBindings are applied in this order when several keys go down in the same frame
var keyBindings = []keyBinding{
	{ebiten.KeySpace, cmdToggle},
	{ebiten.KeyC, cmdClear},
	{ebiten.KeyR, cmdRandomize},
	{ebiten.KeyUp, cmdProbabilityUp},
	{ebiten.KeyDown, cmdProbabilityDown},
	{ebiten.KeyG, cmdGlider},
	{ebiten.KeyB, cmdBlinker},
}

// pressedCommands returns the commands for the pressed keys in binding order
func pressedCommands(pressed func(ebiten.Key) bool) []command {
	var cmds []command
	for _, b := range keyBindings {
		if pressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

// Game hosts a session in an ebiten window: the canvas on top, a status bar below
type Game struct {
	session       *sim.Session
	canvas        *canvas
	slider        *Slider
	width, height int

	pointerInside    bool
	lastX, lastY     int
	lastCursor       input.Cursor
	cursorConfigured bool
}

// NewGame creates the session and its canvas; probability is the raw initial slider value
func NewGame(rows, cols, cellSize int, probability float64) (*Game, error) {
	c := &canvas{}
	session, err := sim.NewSession(rows, cols, cellSize, c)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGame] failed to create session")
	}

	return &Game{
		session: session,
		canvas:  c,
		slider:  NewSlider(probability, 0, 1, probabilityStep),
		width:   session.Renderer().Width(),
		height:  session.Renderer().Height(),
	}, nil
}

func (g *Game) Session() *sim.Session {
	return g.session
}

// WindowSize is the outer size needed for the canvas and the status bar
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height + statusBarHeight
}

// Update is called each tick by ebiten
func (g *Game) Update() error {
	for _, cmd := range pressedCommands(inpututil.IsKeyJustPressed) {
		g.apply(cmd)
	}

	g.handlePointer()
	g.session.Scheduler().Poll(time.Now())
	g.updateCursor()
	return nil
}

func (g *Game) apply(cmd command) {
	switch cmd {
	case cmdToggle:
		g.session.Toggle()
		g.slider.SetDisabled(g.session.Running())
	case cmdClear:
		g.session.Clear()
	case cmdRandomize:
		g.session.RandomizeFrom(g.slider.Text())
	case cmdProbabilityUp:
		g.slider.Increase()
	case cmdProbabilityDown:
		g.slider.Decrease()
	case cmdGlider:
		g.session.PlaceGlider()
	case cmdBlinker:
		g.session.PlaceBlinker()
	}
}

// handlePointer turns the cursor state into pointer events relative to the canvas
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	controller := g.session.Controller()

	if g.pointerInside && !inside {
		controller.PointerLeave()
	}
	g.pointerInside = inside

	if inside {
		moved := x != g.lastX || y != g.lastY
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			controller.PointerDown(float64(x), float64(y))
		case moved:
			controller.PointerMove(float64(x), float64(y))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		controller.PointerUp()
	}
	g.lastX, g.lastY = x, y
}

func (g *Game) updateCursor() {
	cursor := g.session.Controller().Cursor()
	if g.cursorConfigured && cursor == g.lastCursor {
		return
	}
	switch cursor {
	case input.CursorNotAllowed:
		ebiten.SetCursorShape(ebiten.CursorShapeNotAllowed)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	}
	g.lastCursor = cursor
	g.cursorConfigured = true
}

// Draw is called each frame by ebiten
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(statusBackground)
	screen.DrawImage(g.canvas.img, &ebiten.DrawImageOptions{})

	for i, line := range g.statusLines() {
		y := g.height + statusPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, basicfont.Face7x13, statusPadding, y, statusTextColor)
	}
}

func (g *Game) statusLines() []string {
	state := "Stopped"
	if g.session.Running() {
		state = "Running"
	}
	return []string{
		fmt.Sprintf("%s | Population: %d | %s | %s | Probability: %s",
			g.session.GenerationText(), g.session.Grid().CountLivingCells(), g.session.Status(), state, g.slider.Text()),
		"Space run/stop  C clear  R randomize  Up/Down probability  G glider  B blinker",
	}
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
