package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrInvalidCellSize is returned when a renderer is created with a non-positive cell size
var ErrInvalidCellSize = errors.New("invalid cell size")

// Board is the read-only view of the grid the renderer paints
type Board interface {
	Rows() int
	Cols() int
	Get(row, col int) bool
}

// Surface is a 2D pixel surface the renderer draws on
type Surface interface {
	// Resize sets the surface size in pixels, discarding its content
	Resize(width, height int)
	FillRect(x, y, width, height int, c color.Color)
	// StrokeLine draws a one pixel wide line between two points on the surface.
	// The renderer only draws horizontal and vertical lines with both ends inside the surface.
	StrokeLine(x0, y0, x1, y1 int, c color.Color)
}

// Renderer repaints a board onto a surface sized cols*cellSize by rows*cellSize
type Renderer struct {
	board    Board
	surface  Surface
	cellSize int
	width    int
	height   int
}

// NewRenderer sizes the surface for the board and returns a renderer for it
func NewRenderer(board Board, surface Surface, cellSize int) (*Renderer, error) {
	if cellSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidCellSize, "[NewRenderer] cell size: %d", cellSize)
	}

	r := &Renderer{
		board:    board,
		surface:  surface,
		cellSize: cellSize,
		width:    board.Cols() * cellSize,
		height:   board.Rows() * cellSize,
	}
	surface.Resize(r.width, r.height)
	return r, nil
}

// CellSize returns the number of pixels per cell side
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Width returns the surface width in pixels
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the surface height in pixels
func (r *Renderer) Height() int {
	return r.height
}

// Render does a full repaint: background, then grid lines, then live cells on top
func (r *Renderer) Render() {
	r.surface.FillRect(0, 0, r.width, r.height, backgroundColor)
	r.drawGridLines()
	r.drawCells()
}

// drawGridLines draws rows+1 horizontal and cols+1 vertical lines.
// The closing right and bottom lines sit on the last pixel column and row so they stay visible.
func (r *Renderer) drawGridLines() {
	right, bottom := r.width-1, r.height-1
	for row := 0; row <= r.board.Rows(); row++ {
		y := min(row*r.cellSize, bottom)
		r.surface.StrokeLine(0, y, right, y, gridLineColor)
	}
	for col := 0; col <= r.board.Cols(); col++ {
		x := min(col*r.cellSize, right)
		r.surface.StrokeLine(x, 0, x, bottom, gridLineColor)
	}
}

func (r *Renderer) drawCells() {
	for row := 0; row < r.board.Rows(); row++ {
		for col := 0; col < r.board.Cols(); col++ {
			if r.board.Get(row, col) {
				r.surface.FillRect(col*r.cellSize, row*r.cellSize, r.cellSize, r.cellSize, aliveColor)
			}
		}
	}
}
