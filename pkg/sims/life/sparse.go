package life

import (
	"fmt"

	"lifegrid/pkg/core"
)

// Sparse is a toroidal grid that stores only its alive cells. It suits large,
// mostly dead worlds where a dense pass would waste time on empty space.
type Sparse struct {
	w, h  int
	alive map[core.Point]struct{}
}

// NewSparse returns an all-dead sparse grid.
func NewSparse(w, h int) (*Sparse, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimension, w, h)
	}
	return &Sparse{w: w, h: h, alive: map[core.Point]struct{}{}}, nil
}

// SparseFromGrid copies the alive cells of a dense grid.
func SparseFromGrid(g *core.Grid) *Sparse {
	size := g.Size()
	s := &Sparse{w: size.W, h: size.H, alive: map[core.Point]struct{}{}}
	for i, c := range g.Cells() {
		if c != 0 {
			s.alive[core.Point{X: i % size.W, Y: i / size.W}] = struct{}{}
		}
	}
	return s
}

// Size returns the grid dimensions.
func (s *Sparse) Size() core.Size { return core.Size{W: s.w, H: s.h} }

func (s *Sparse) wrap(x, y int) core.Point {
	return core.Point{X: (x%s.w + s.w) % s.w, Y: (y%s.h + s.h) % s.h}
}

// Alive reports whether (x, y) is alive. Coordinates wrap.
func (s *Sparse) Alive(x, y int) bool {
	_, ok := s.alive[s.wrap(x, y)]
	return ok
}

// Set marks (x, y) alive or dead. Coordinates wrap.
func (s *Sparse) Set(x, y int, alive bool) {
	p := s.wrap(x, y)
	if alive {
		s.alive[p] = struct{}{}
		return
	}
	delete(s.alive, p)
}

// Population returns the number of alive cells.
func (s *Sparse) Population() int { return len(s.alive) }

// Neighbors counts alive neighbours of (x, y) with wraparound.
func (s *Sparse) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && s.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation. Only alive cells and their
// neighbours are evaluated; every other cell stays dead.
func (s *Sparse) Next() *Sparse {
	next := &Sparse{w: s.w, h: s.h, alive: make(map[core.Point]struct{}, len(s.alive))}
	seen := make(map[core.Point]struct{}, len(s.alive)*9)
	for p := range s.alive {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c := s.wrap(p.X+dx, p.Y+dy)
				if _, done := seen[c]; done {
					continue
				}
				seen[c] = struct{}{}
				if NextCellState(s.Alive(c.X, c.Y), s.Neighbors(c.X, c.Y)) {
					next.alive[c] = struct{}{}
				}
			}
		}
	}
	return next
}

// Dense renders the sparse grid into a new dense grid.
func (s *Sparse) Dense() *core.Grid {
	g := core.MustGrid(s.w, s.h)
	s.fill(g.Cells())
	return g
}

func (s *Sparse) fill(buf []uint8) {
	for i := range buf {
		buf[i] = 0
	}
	for p := range s.alive {
		buf[p.Y*s.w+p.X] = 1
	}
}

// SparseLife runs Life on a Sparse grid. It keeps a dense display buffer so
// it can be drawn like any other sim.
type SparseLife struct {
	cfg        Config
	grid       *Sparse
	cells      []uint8
	seed       int64
	generation int
}

// NewSparseLife returns a sparse Life simulation for a validated config.
func NewSparseLife(cfg Config) (*SparseLife, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := NewSparse(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &SparseLife{cfg: cfg, grid: g, cells: make([]uint8, cfg.Width*cfg.Height), seed: cfg.Seed}, nil
}

// Name returns the simulation identifier.
func (l *SparseLife) Name() string { return "life-sparse" }

// Size returns the grid dimensions.
func (l *SparseLife) Size() core.Size { return l.grid.Size() }

// Cells exposes a dense view of the current generation.
func (l *SparseLife) Cells() []uint8 { return l.cells }

// Generation returns how many steps were taken since the last reset.
func (l *SparseLife) Generation() int { return l.generation }

// Population returns the number of alive cells.
func (l *SparseLife) Population() int { return l.grid.Population() }

// Reset seeds generation 0 exactly as the dense sim does for the same seed.
func (l *SparseLife) Reset(seed int64) {
	l.seed = seed
	l.generation = 0
	l.grid = SparseFromGrid(seedGrid(l.cfg, seed))
	l.cells = make([]uint8, l.cfg.Width*l.cfg.Height)
	l.grid.fill(l.cells)
}

// Step advances the simulation by one generation.
func (l *SparseLife) Step() {
	l.grid = l.grid.Next()
	l.cells = make([]uint8, l.cfg.Width*l.cfg.Height)
	l.grid.fill(l.cells)
	l.generation++
}

// Parameters describes the running simulation.
func (l *SparseLife) Parameters() core.ParameterSnapshot {
	return snapshot(l.cfg, l.seed, l.generation, l.Population())
}
