package render

import (
	"image/color"

	"lifegrid/pkg/core"
)

// Surface is the drawing capability a grid needs: filled and outlined
// rectangles in surface units, with the origin at the top left.
type Surface interface {
	Bounds() (w, h float64)
	FillRect(x, y, w, h float64, fill color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, stroke color.Color)
}

// Frame is a read-only snapshot of binary cells in row-major order.
type Frame interface {
	Size() core.Size
	Cells() []uint8
}

// Style controls how cells are painted.
type Style struct {
	Alive       color.Color
	Dead        color.Color
	Stroke      color.Color
	StrokeWidth float64
	// Margin is the total space left around the grid on each axis; half of
	// it offsets the first cell.
	Margin float64
}

// DefaultStyle returns yellow cells on white with black outlines.
func DefaultStyle() Style {
	return Style{
		Alive:       color.RGBA{R: 255, G: 255, A: 255},
		Dead:        color.White,
		Stroke:      color.Black,
		StrokeWidth: 1.5,
		Margin:      2,
	}
}
