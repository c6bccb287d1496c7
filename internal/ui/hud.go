//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
)

// HUD renders the sim's status in a translucent panel over the top left of
// the grid.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
}

// NewHUD constructs a visible HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached status lines from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil || !h.visible {
		return
	}
	h.lines = StatusLines(h.sim, paused)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	panelW := float32(width + 2*panelPadding)
	panelH := float32(len(h.lines)*lineHeight + panelPadding)
	vector.DrawFilledRect(screen, 0, 0, panelW, panelH, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range h.lines {
		text.Draw(screen, line, face, panelPadding, (i+1)*lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
