package app

import (
	"errors"
	"flag"
	"math"
	"testing"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "12", "-p", "0.5", "-pattern", "glider", "-backend", "png"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	m := cfg.SimConfig()
	if m["w"] != "12" || m["h"] != "30" || m["p"] != "0.5" || m["pattern"] != "glider" || m["seed"] != "42" {
		t.Fatalf("sim config = %v", m)
	}
	if got := life.FromMap(m); got.Width != 12 || got.AliveProbability != 0.5 {
		t.Fatalf("round trip through FromMap = %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"backend", func(c *Config) { c.Backend = "svg" }, ErrUnknownBackend},
		{"width", func(c *Config) { c.Width = 0 }, core.ErrInvalidDimension},
		{"probability", func(c *Config) { c.P = -0.1 }, life.ErrInvalidProbability},
		{"nan probability", func(c *Config) { c.P = math.NaN() }, life.ErrInvalidProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mod(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	cfg := NewConfig()
	cfg.Cell = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero cell size accepted")
	}
}

func TestConfigValidateTPS(t *testing.T) {
	for _, arg := range []string{"0", "-2"} {
		cfg := NewConfig()
		fs := flag.NewFlagSet("life", flag.ContinueOnError)
		cfg.Bind(fs)
		if err := fs.Parse([]string{"-tps", arg}); err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("-tps %s accepted", arg)
		}
	}
}

func TestConfigValidateNaNFlag(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-p", "NaN"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); !errors.Is(err, life.ErrInvalidProbability) {
		t.Fatalf("err = %v, want ErrInvalidProbability", err)
	}
}

func TestSurfaceSize(t *testing.T) {
	cfg := NewConfig()
	cfg.Cell = 10
	w, h := cfg.SurfaceSize(30, 20, 2)
	if w != 302 || h != 202 {
		t.Fatalf("surface = %dx%d", w, h)
	}
}
