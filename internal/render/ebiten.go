//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image using vector primitives.
type EbitenSurface struct {
	dst       *ebiten.Image
	antialias bool
}

// NewEbitenSurface wraps dst. The surface is only valid for the frame dst
// belongs to.
func NewEbitenSurface(dst *ebiten.Image, antialias bool) *EbitenSurface {
	return &EbitenSurface{dst: dst, antialias: antialias}
}

// Bounds returns the destination size in pixels.
func (s *EbitenSurface) Bounds() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect draws a filled rectangle.
func (s *EbitenSurface) FillRect(x, y, w, h float64, fill color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), fill, s.antialias)
}

// StrokeRect draws a rectangle outline.
func (s *EbitenSurface) StrokeRect(x, y, w, h, lineWidth float64, stroke color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), stroke, s.antialias)
}
