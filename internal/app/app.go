//go:build ebiten

package app

import (
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Loop to the ebiten.Game interface. ebiten calls Update at its
// TPS and Draw once per displayed frame.
type Game struct {
	loop *Loop
	hud  *ui.HUD

	width, height int
}

// New constructs a Game drawing onto a width*height logical screen.
func New(loop *Loop, width, height int) *Game {
	return &Game{
		loop:   loop,
		hud:    ui.NewHUD(loop.Sim()),
		width:  width,
		height: height,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.Apply(CmdTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.Apply(CmdStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Apply(CmdReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Apply(CmdReseed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.loop.Advance()
	g.hud.Update(g.loop.Paused())
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render(render.NewEbitenSurface(screen, false))
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
