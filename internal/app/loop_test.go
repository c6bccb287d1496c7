package app

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"lifegrid/internal/render"
	"lifegrid/pkg/sims/life"
)

type countingSurface struct {
	fills int
}

func (s *countingSurface) Bounds() (float64, float64)                       { return 100, 100 }
func (s *countingSurface) FillRect(x, y, w, h float64, c color.Color)       { s.fills++ }
func (s *countingSurface) StrokeRect(x, y, w, h, lw float64, c color.Color) {}

func newBlinker(t *testing.T) *life.Life {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Pattern = 5, 5, "blinker"
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	return sim
}

func TestLoopRendersThenAdvances(t *testing.T) {
	sim := newBlinker(t)
	start := sim.Grid()
	loop := NewLoop(sim, render.DefaultStyle(), 0, 0)
	surface := &countingSurface{}

	frames := make(chan time.Time, 2)
	frames <- time.Time{}
	frames <- time.Time{}
	close(frames)

	presented := 0
	err := loop.Run(context.Background(), surface, frames, nil, func() { presented++ })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if presented != 2 || surface.fills != 50 {
		t.Fatalf("presented=%d fills=%d, want 2 and 50", presented, surface.fills)
	}
	if sim.Generation() != 2 || !sim.Grid().Equal(start) {
		t.Fatalf("generation %d, blinker not back to start", sim.Generation())
	}
}

func TestLoopPauseAndStep(t *testing.T) {
	sim := newBlinker(t)
	loop := NewLoop(sim, render.DefaultStyle(), 0, 0)

	loop.Apply(CmdTogglePause)
	if !loop.Paused() || loop.Advance() {
		t.Fatal("paused loop advanced")
	}
	loop.Apply(CmdStep)
	if !loop.Advance() || sim.Generation() != 1 {
		t.Fatal("single step while paused did not advance once")
	}
	if loop.Advance() {
		t.Fatal("single step advanced twice")
	}
	loop.Apply(CmdTogglePause)
	if !loop.Advance() || sim.Generation() != 2 {
		t.Fatal("resumed loop did not advance")
	}
}

func TestLoopReset(t *testing.T) {
	cfg := life.DefaultConfig()
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(3)
	first := sim.Grid()
	loop := NewLoop(sim, render.DefaultStyle(), 0, 3)
	loop.Advance()
	loop.Apply(CmdReset)
	if sim.Generation() != 0 || !sim.Grid().Equal(first) {
		t.Fatal("reset did not restore generation 0")
	}
	loop.Apply(CmdReseed)
	if loop.Seed() == 3 {
		t.Fatal("reseed kept the old seed")
	}
}

func TestLoopPacing(t *testing.T) {
	sim := newBlinker(t)
	loop := NewLoop(sim, render.DefaultStyle(), 1, 0)
	loop.Advance()
	loop.Advance()
	loop.Advance()
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1 within the first second", sim.Generation())
	}
}

func TestLoopRunCancelled(t *testing.T) {
	loop := NewLoop(newBlinker(t), render.DefaultStyle(), 0, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := loop.Run(ctx, &countingSurface{}, make(chan time.Time), nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoopRunAppliesCommands(t *testing.T) {
	sim := newBlinker(t)
	loop := NewLoop(sim, render.DefaultStyle(), 0, 0)
	cmds := make(chan Command)
	frames := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background(), &countingSurface{}, frames, cmds, nil) }()

	cmds <- CmdTogglePause
	frames <- time.Time{}
	close(frames)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 0 {
		t.Fatal("paused loop advanced on a frame")
	}
}
