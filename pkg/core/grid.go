package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid is created with a non-positive
// width or height.
var ErrInvalidDimension = errors.New("grid dimensions must be positive")

// Grid stores a 2D grid of binary cells in row-major order. The dimensions
// are fixed at creation.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice. Index with y*W + x.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[y*g.w+x] != 0
}

// Set marks the cell at (x, y) alive or dead. Coordinates wrap.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	var v uint8
	if alive {
		v = 1
	}
	g.data[y*g.w+x] = v
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.data {
		if (c != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}
