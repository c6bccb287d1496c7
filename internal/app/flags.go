package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// ErrUnknownBackend is returned for a backend name the CLI does not know.
var ErrUnknownBackend = errors.New("unknown backend")

// Backends the CLI can drive.
const (
	BackendGUI  = "gui"
	BackendTerm = "term"
	BackendPNG  = "png"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	P       float64
	Seed    int64
	Pattern string

	Backend string
	TPS     int
	Cell    int
	Steps   int
	Out     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Sim:     "life",
		Width:   lc.Width,
		Height:  lc.Height,
		P:       lc.AliveProbability,
		Seed:    lc.Seed,
		Backend: BackendGUI,
		TPS:     10,
		Cell:    20,
		Out:     "life.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid columns")
	fs.IntVar(&c.Height, "h", c.Height, "grid rows")
	fs.Float64Var(&c.P, "p", c.P, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed with a named pattern ("+strings.Join(life.PatternNames(), ", ")+") instead of random cells")
	fs.StringVar(&c.Backend, "backend", c.Backend, "host to run on: gui, term or png")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels for gui and png")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to advance before the png snapshot")
	fs.StringVar(&c.Out, "out", c.Out, "png snapshot path")
}

// Validate rejects values the sim factory would otherwise replace with
// defaults, and values only the hosts use.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGUI, BackendTerm, BackendPNG:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimension, c.Width, c.Height)
	}
	if !(c.P >= 0 && c.P <= 1) {
		return fmt.Errorf("%w: %v", life.ErrInvalidProbability, c.P)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Cell <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// SimConfig converts the flags into the map a sim factory reads.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"p":    strconv.FormatFloat(c.P, 'g', -1, 64),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}

// SurfaceSize returns the pixel size of a surface that fits w*h cells of the
// configured size plus margin.
func (c *Config) SurfaceSize(w, h int, margin float64) (int, int) {
	m := int(margin)
	return w*c.Cell + m, h*c.Cell + m
}
