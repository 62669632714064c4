package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-canvas/model"
)

const cellSize = 10

type countingPainter struct {
	renders int
}

func (p *countingPainter) Render()       { p.renders++ }
func (p *countingPainter) CellSize() int { return cellSize }

func newController(t *testing.T, rows, cols int) (*Controller, *model.Grid, *countingPainter) {
	t.Helper()
	g, err := model.NewGrid(rows, cols)
	require.NoError(t, err)
	p := &countingPainter{}
	return NewController(g, p), g, p
}

// center returns surface coordinates in the middle of a cell
func center(row, col int) (float64, float64) {
	return float64(col*cellSize) + cellSize/2, float64(row*cellSize) + cellSize/2
}

func TestCellAt(t *testing.T) {
	c, _, _ := newController(t, 4, 6)

	tests := []struct {
		x, y     float64
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{9.99, 9.99, 0, 0, true},
		{10, 0, 0, 1, true},
		{59.5, 39.5, 3, 5, true},
		{60, 0, 0, 6, false},
		{0, 40, 4, 0, false},
		{-0.5, 5, 0, -1, false},
		{5, -12, -2, 0, false},
	}
	for _, tc := range tests {
		row, col, ok := c.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.row, row, "row for (%v, %v)", tc.x, tc.y)
		assert.Equal(t, tc.col, col, "col for (%v, %v)", tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "ok for (%v, %v)", tc.x, tc.y)
	}
}

func TestDragFromDeadCellPaintsAlive(t *testing.T) {
	c, g, p := newController(t, 5, 5)

	c.PointerDown(center(0, 0))
	assert.True(t, c.Dragging())
	assert.True(t, c.DragMode())
	assert.True(t, g.Get(0, 0))
	assert.Equal(t, 1, p.renders)

	for col := 1; col < 5; col++ {
		c.PointerMove(center(0, col))
	}
	for col := 0; col < 5; col++ {
		assert.True(t, g.Get(0, col))
	}
	assert.Equal(t, 5, p.renders)

	c.PointerUp()
	assert.False(t, c.Dragging())

	c.PointerMove(center(1, 1))
	assert.False(t, g.Get(1, 1))
	assert.Equal(t, 5, p.renders)
}

func TestDragFromLiveCellPaintsDead(t *testing.T) {
	c, g, p := newController(t, 3, 3)
	g.Randomize(1)

	c.PointerDown(center(1, 1))
	assert.False(t, c.DragMode())
	assert.False(t, g.Get(1, 1))

	c.PointerMove(center(1, 2))
	c.PointerMove(center(2, 2))
	assert.False(t, g.Get(1, 2))
	assert.False(t, g.Get(2, 2))
	assert.Equal(t, 6, g.CountLivingCells())
	assert.Equal(t, 3, p.renders)
}

func TestDragKeepsModeOverMixedCells(t *testing.T) {
	c, g, _ := newController(t, 1, 4)
	g.Set(0, 2, true)

	c.PointerDown(center(0, 0))
	for col := 1; col < 4; col++ {
		c.PointerMove(center(0, col))
	}
	assert.Equal(t, 4, g.CountLivingCells())
}

func TestMoveOverMatchingCellSkipsRender(t *testing.T) {
	c, _, p := newController(t, 3, 3)

	c.PointerDown(center(0, 0))
	c.PointerMove(center(0, 0))
	c.PointerMove(center(0, 0))
	assert.Equal(t, 1, p.renders)
}

func TestPointerDownOutsideIsIgnored(t *testing.T) {
	c, g, p := newController(t, 3, 3)

	c.PointerDown(-1, 5)
	c.PointerDown(30, 5)
	c.PointerDown(5, 31)
	assert.False(t, c.Dragging())
	assert.Equal(t, 0, g.CountLivingCells())
	assert.Equal(t, 0, p.renders)
}

func TestPointerMoveOutsideIsIgnored(t *testing.T) {
	c, g, p := newController(t, 3, 3)

	c.PointerDown(center(0, 0))
	c.PointerMove(-3, -3)
	c.PointerMove(100, 100)
	assert.True(t, c.Dragging())
	assert.Equal(t, 1, g.CountLivingCells())
	assert.Equal(t, 1, p.renders)

	c.PointerMove(center(0, 1))
	assert.True(t, g.Get(0, 1))
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	c, g, _ := newController(t, 3, 3)

	c.PointerDown(center(0, 0))
	c.PointerLeave()
	assert.False(t, c.Dragging())

	c.PointerMove(center(0, 1))
	assert.False(t, g.Get(0, 1))
}

func TestDisabledControllerIgnoresEdits(t *testing.T) {
	c, g, p := newController(t, 3, 3)

	c.SetEnabled(false)
	assert.False(t, c.Enabled())
	assert.Equal(t, CursorNotAllowed, c.Cursor())

	c.PointerDown(center(1, 1))
	c.PointerMove(center(1, 2))
	assert.False(t, c.Dragging())
	assert.Equal(t, 0, g.CountLivingCells())
	assert.Equal(t, 0, p.renders)

	c.SetEnabled(true)
	assert.Equal(t, CursorPointer, c.Cursor())
	c.PointerDown(center(1, 1))
	assert.True(t, g.Get(1, 1))
}

func TestDisableMidDragStopsPaintingButUpStillEndsDrag(t *testing.T) {
	c, g, _ := newController(t, 3, 3)

	c.PointerDown(center(0, 0))
	c.SetEnabled(false)
	c.PointerMove(center(0, 1))
	assert.False(t, g.Get(0, 1))

	c.PointerUp()
	assert.False(t, c.Dragging())
}

func TestPointerDownWhileDraggingIsIgnored(t *testing.T) {
	c, g, p := newController(t, 3, 3)

	c.PointerDown(center(0, 0))
	c.PointerDown(center(2, 2))
	assert.False(t, g.Get(2, 2))
	assert.Equal(t, 1, p.renders)
}
