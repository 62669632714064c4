package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is an offscreen ebiten image the renderer paints on; Draw copies it to the screen
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) Resize(width, height int) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
}

func (c *canvas) FillRect(x, y, width, height int, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// StrokeLine draws a one pixel line centered on the pixel row or column
func (c *canvas) StrokeLine(x0, y0, x1, y1 int, clr color.Color) {
	vector.StrokeLine(c.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, clr, false)
}
