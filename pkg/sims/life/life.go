package life

import (
	"strconv"

	"lifegrid/pkg/core"
)

// Life implements Conway's Game of Life on a dense toroidal grid.
type Life struct {
	cfg        Config
	grid       *core.Grid
	seed       int64
	generation int
}

// New returns a Life simulation for a validated config. The grid starts all
// dead until Reset is called.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, grid: g, seed: cfg.Seed}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current generation. The slice is replaced, not mutated,
// by Step.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns how many steps were taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of alive cells.
func (l *Life) Population() int { return l.grid.Population() }

// Reset seeds a fresh generation 0. A pattern config stamps the pattern onto
// an empty grid; otherwise cells are randomized with the configured
// probability.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.generation = 0
	l.grid = seedGrid(l.cfg, seed)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = NextGrid(l.grid)
	l.generation++
}

// Parameters describes the running simulation for HUDs and status lines.
func (l *Life) Parameters() core.ParameterSnapshot {
	return snapshot(l.cfg, l.seed, l.generation, l.Population())
}

func seedGrid(cfg Config, seed int64) *core.Grid {
	g := core.MustGrid(cfg.Width, cfg.Height)
	if cfg.Pattern != "" {
		// Validate already rejected unknown names.
		p, _ := LookupPattern(cfg.Pattern)
		p.Stamp(g, cfg.Width/2, cfg.Height/2)
		return g
	}
	core.FillChance(core.NewRNG(seed).Source(), g.Cells(), cfg.AliveProbability)
	return g
}

func snapshot(cfg Config, seed int64, generation, population int) core.ParameterSnapshot {
	seeding := strconv.FormatFloat(cfg.AliveProbability, 'f', 2, 64)
	if cfg.Pattern != "" {
		seeding = cfg.Pattern
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(population)},
			},
		},
		{
			Name: "Seed",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: strconv.Itoa(cfg.Width) + "x" + strconv.Itoa(cfg.Height)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(seed, 10)},
				{Key: "p", Label: "Seeding", Type: core.ParamTypeString, Value: seeding},
			},
		},
	}}
}

func init() {
	core.Register("life", func(m map[string]string) (core.Sim, error) {
		return New(FromMap(m))
	})
	core.Register("life-sparse", func(m map[string]string) (core.Sim, error) {
		return NewSparseLife(FromMap(m))
	})
}
