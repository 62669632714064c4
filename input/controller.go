package input

import "math"

// Cursor is the pointer affordance hint for the drawing surface
type Cursor int

const (
	CursorPointer Cursor = iota
	CursorNotAllowed
)

// Board is the part of the grid the controller reads and paints
type Board interface {
	Rows() int
	Cols() int
	Get(row, col int) bool
	Set(row, col int, alive bool)
}

// Painter repaints the surface and knows its cell size
type Painter interface {
	Render()
	CellSize() int
}

// Controller turns pointer events on the surface into drag-paint edits of the board.
// Coordinates are in pixels relative to the surface's top-left corner.
type Controller struct {
	board      Board
	painter    Painter
	isDragging bool
	dragMode   bool // Value painted during the current drag
	isEnabled  bool
	cursor     Cursor
}

func NewController(board Board, painter Painter) *Controller {
	return &Controller{
		board:     board,
		painter:   painter,
		dragMode:  true,
		isEnabled: true,
		cursor:    CursorPointer,
	}
}

// CellAt maps surface coordinates to a cell; ok is false outside the grid
func (c *Controller) CellAt(x, y float64) (row, col int, ok bool) {
	size := float64(c.painter.CellSize())
	col = int(math.Floor(x / size))
	row = int(math.Floor(y / size))
	ok = row >= 0 && row < c.board.Rows() && col >= 0 && col < c.board.Cols()
	return row, col, ok
}

// PointerDown starts a drag, painting the opposite of the pressed cell's state
func (c *Controller) PointerDown(x, y float64) {
	if !c.isEnabled || c.isDragging {
		return
	}

	row, col, ok := c.CellAt(x, y)
	if !ok {
		return
	}

	c.isDragging = true
	c.dragMode = !c.board.Get(row, col)
	c.board.Set(row, col, c.dragMode)
	c.painter.Render()
}

// PointerMove paints the cell under the pointer while dragging
func (c *Controller) PointerMove(x, y float64) {
	if !c.isDragging || !c.isEnabled {
		return
	}

	row, col, ok := c.CellAt(x, y)
	if !ok {
		return
	}

	if c.board.Get(row, col) != c.dragMode {
		c.board.Set(row, col, c.dragMode)
		c.painter.Render()
	}
}

// PointerUp ends the current drag
func (c *Controller) PointerUp() {
	c.isDragging = false
}

// PointerLeave ends the current drag when the pointer leaves the surface
func (c *Controller) PointerLeave() {
	c.isDragging = false
}

// SetEnabled toggles whether presses and drags edit the board
func (c *Controller) SetEnabled(enabled bool) {
	c.isEnabled = enabled
	if enabled {
		c.cursor = CursorPointer
	} else {
		c.cursor = CursorNotAllowed
	}
}

func (c *Controller) Enabled() bool {
	return c.isEnabled
}

func (c *Controller) Dragging() bool {
	return c.isDragging
}

// DragMode returns the value painted by the current or last drag
func (c *Controller) DragMode() bool {
	return c.dragMode
}

func (c *Controller) Cursor() Cursor {
	return c.cursor
}
