//go:build ebiten

package main

import (
	"errors"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(cfg *app.Config, sim core.Sim) error {
	st := render.DefaultStyle()
	size := sim.Size()
	w, h := cfg.SurfaceSize(size.W, size.H, st.Margin)

	// ebiten paces Update at TPS, so the loop steps on every call.
	loop := app.NewLoop(sim, st, 0, cfg.Seed)
	game := app.New(loop, w, h)

	ebiten.SetWindowTitle("lifegrid — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
