package life

import (
	"errors"
	"fmt"
	"strconv"

	"lifegrid/pkg/core"
)

// ErrInvalidProbability is returned for alive probabilities outside [0, 1].
var ErrInvalidProbability = errors.New("alive probability must be within [0, 1]")

// Config holds parameters for a Life simulation.
type Config struct {
	Width            int
	Height           int
	AliveProbability float64
	Seed             int64

	// Pattern, when set, seeds the grid with a named pattern instead of
	// random cells.
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 30, Height: 30, AliveProbability: 0.2, Seed: 42}
}

// Validate checks the config for values a simulation cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimension, c.Width, c.Height)
	}
	if !(c.AliveProbability >= 0 && c.AliveProbability <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, c.AliveProbability)
	}
	if c.Pattern != "" {
		if _, err := LookupPattern(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveProbability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}
