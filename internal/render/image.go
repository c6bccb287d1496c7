package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// ImageSurface draws onto an in-memory RGBA image, one surface unit per
// pixel. It backs headless snapshots.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a w*h pixel surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Bounds returns the image size in pixels.
func (s *ImageSurface) Bounds() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole image with c.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints the pixels covered by the rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, fill color.Color) {
	r := pixelRect(x, y, x+w, y+h)
	draw.Draw(s.img, r, image.NewUniform(fill), image.Point{}, draw.Over)
}

// StrokeRect paints an outline of the given width centred on the rectangle's
// edges.
func (s *ImageSurface) StrokeRect(x, y, w, h, lineWidth float64, stroke color.Color) {
	if lineWidth <= 0 {
		return
	}
	half := lineWidth / 2
	src := image.NewUniform(stroke)
	edges := []image.Rectangle{
		pixelRect(x-half, y-half, x+w+half, y+half),
		pixelRect(x-half, y+h-half, x+w+half, y+h+half),
		pixelRect(x-half, y+half, x+half, y+h-half),
		pixelRect(x+w-half, y+half, x+w+half, y+h-half),
	}
	for _, r := range edges {
		draw.Draw(s.img, r, src, image.Point{}, draw.Over)
	}
}

// pixelRect rounds a float rectangle to the pixels whose centres it covers.
func pixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}
