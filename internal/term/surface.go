package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// colsPerUnit keeps cells roughly square: terminal glyphs are about twice as
// tall as they are wide.
const colsPerUnit = 2

// Surface paints rectangles onto a tcell screen by colouring the background
// of every character cell whose centre lies inside the rectangle. One surface
// unit is two columns by one row. The top rows are left to the status line.
type Surface struct {
	screen tcell.Screen
	top    int
}

// NewSurface returns a surface below the first top rows of screen.
func NewSurface(screen tcell.Screen, top int) *Surface {
	return &Surface{screen: screen, top: top}
}

// Bounds returns the drawable area in surface units.
func (s *Surface) Bounds() (float64, float64) {
	w, h := s.screen.Size()
	h -= s.top
	if h < 0 {
		h = 0
	}
	return float64(w / colsPerUnit), float64(h)
}

// FillRect colours the character cells covered by the rectangle.
func (s *Surface) FillRect(x, y, w, h float64, fill color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(fill))
	sw, sh := s.screen.Size()
	for row := 0; row+s.top < sh; row++ {
		cy := float64(row) + 0.5
		if cy < y || cy >= y+h {
			continue
		}
		for col := 0; col < sw; col++ {
			cx := (float64(col) + 0.5) / colsPerUnit
			if cx < x || cx >= x+w {
				continue
			}
			s.screen.SetContent(col, row+s.top, ' ', nil, style)
		}
	}
}

// StrokeRect is a no-op: outlines thinner than a character cell cannot be
// shown.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, stroke color.Color) {}

func tcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
