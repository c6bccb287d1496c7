package term

import (
	"context"
	"image/color"
	"testing"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func background(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := s.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func TestSurfaceBounds(t *testing.T) {
	s := newScreen(t, 81, 25)
	w, h := NewSurface(s, 1).Bounds()
	if w != 40 || h != 24 {
		t.Fatalf("bounds = %vx%v, want 40x24", w, h)
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := newScreen(t, 8, 5)
	surface := NewSurface(s, 1)
	surface.FillRect(1, 1, 2, 2, color.RGBA{R: 255, A: 255})
	s.Show()

	red := tcell.NewRGBColor(255, 0, 0)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x <= 5 && y >= 2 && y <= 3
			if got := background(t, s, x, y) == red; got != inside {
				t.Fatalf("cell (%d,%d) painted=%v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestDrawBlinkerOnScreen(t *testing.T) {
	s := newScreen(t, 10, 6)
	g := core.MustGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	render.Draw(NewSurface(s, 1), g, Style())
	s.Show()

	yellow := tcell.NewRGBColor(255, 255, 0)
	black := tcell.NewRGBColor(0, 0, 0)
	if bg := background(t, s, 4, 3); bg != yellow {
		t.Fatalf("centre cell bg = %v, want yellow", bg)
	}
	if bg := background(t, s, 0, 1); bg != black {
		t.Fatalf("corner cell bg = %v, want black", bg)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newScreen(t, 20, 11)
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Pattern = 10, 10, "blinker"
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	loop := app.NewLoop(sim, Style(), 0, 0)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), s, loop, 200) }()

	time.Sleep(100 * time.Millisecond)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after q")
	}
	if sim.Generation() == 0 {
		t.Fatal("no generation was computed")
	}
	if sim.Population() != 3 {
		t.Fatalf("blinker population = %d, want 3", sim.Population())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t, 20, 11)
	sim, err := life.New(life.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := Run(ctx, s, app.NewLoop(sim, Style(), 0, 0), 100); err == nil {
		t.Fatal("expected the deadline error")
	}
}
