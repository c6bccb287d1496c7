package life

import (
	"math/rand/v2"

	"lifegrid/pkg/core"
)

// CreateGrid returns a w*h grid where every cell is alive with independent
// probability p. A nil rng draws from an unseeded source.
func CreateGrid(w, h int, p float64, rng *rand.Rand) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	core.FillChance(rng, g.Cells(), p)
	return g, nil
}

// AliveNeighborCount counts the alive cells among the eight neighbours of
// (x, y), wrapping around both edges.
func AliveNeighborCount(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// NextCellState applies Conway's rule: survive on 2 or 3, birth on exactly 3.
func NextCellState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NextGrid computes the following generation. The input grid is only read.
func NextGrid(g *core.Grid) *core.Grid {
	size := g.Size()
	next := core.MustGrid(size.W, size.H)
	cur, out := g.Cells(), next.Cells()
	w, h := size.W, size.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if NextCellState(cur[idx] != 0, AliveNeighborCount(g, x, y)) {
				out[idx] = 1
			}
		}
	}
	return next
}
