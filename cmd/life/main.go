package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	"lifegrid/internal/term"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	switch cfg.Backend {
	case app.BackendGUI:
		err = runGUI(cfg, sim)
	case app.BackendTerm:
		err = runTerm(cfg, sim)
	case app.BackendPNG:
		err = runPNG(cfg, sim)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runTerm(cfg *app.Config, sim core.Sim) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := app.NewLoop(sim, term.Style(), cfg.TPS, cfg.Seed)
	return term.Run(ctx, screen, loop, 30)
}

func runPNG(cfg *app.Config, sim core.Sim) error {
	for i := 0; i < cfg.Steps; i++ {
		sim.Step()
	}
	st := render.DefaultStyle()
	size := sim.Size()
	w, h := cfg.SurfaceSize(size.W, size.H, st.Margin)
	surface := render.NewImageSurface(w, h)
	surface.Clear(st.Dead)
	render.Draw(surface, sim, st)

	if err := writePNG(cfg.Out, surface.Image()); err != nil {
		return err
	}
	log.Printf("wrote generation %d of %s to %s", cfg.Steps, sim.Name(), cfg.Out)
	return nil
}
