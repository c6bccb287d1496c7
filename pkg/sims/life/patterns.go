package life

import (
	"errors"
	"fmt"
	"sort"

	"lifegrid/pkg/core"
)

// ErrUnknownPattern is returned when a pattern name is not registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of alive cells relative to the pattern's origin.
type Pattern struct {
	Name  string
	Cells []core.Point
}

var patterns = map[string]Pattern{
	"block":   {Name: "block", Cells: []core.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"blinker": {Name: "blinker", Cells: []core.Point{{0, -1}, {0, 0}, {0, 1}}},
	"beehive": {Name: "beehive", Cells: []core.Point{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}}},
	"glider":  {Name: "glider", Cells: []core.Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the known patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells alive with its origin at (x, y). Cells past
// an edge wrap.
func (p Pattern) Stamp(g *core.Grid, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c.X, y+c.Y, true)
	}
}
