package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ImageSurface is a Surface backed by an in-memory RGBA image
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface returns an empty surface; NewRenderer sizes it
func NewImageSurface() *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

// Image exposes the backing image
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (s *ImageSurface) FillRect(x, y, width, height int, c color.Color) {
	rect := image.Rect(x, y, x+width, y+height).Intersect(s.img.Bounds())
	draw.Draw(s.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeLine draws a one pixel wide horizontal or vertical line, endpoints included, clipped to the image.
// Only axis-aligned lines are supported; other input fills the rectangle spanned by the endpoints.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	rect := image.Rect(x0, y0, x1+1, y1+1).Intersect(s.img.Bounds())
	draw.Draw(s.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the surface as a PNG image
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return errors.Wrap(err, "[EncodePNG] failed to encode surface")
	}
	return nil
}

// SavePNG writes the surface to a PNG file
func (s *ImageSurface) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SavePNG] failed to create file: %+v", filename)
	}
	defer f.Close()

	if err = s.EncodePNG(f); err != nil {
		return errors.Wrapf(err, "[SavePNG] failed to write file: %+v", filename)
	}
	return errors.Wrapf(f.Close(), "[SavePNG] failed to close file: %+v", filename)
}
