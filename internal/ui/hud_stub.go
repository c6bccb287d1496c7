//go:build !ebiten

package ui

import "lifegrid/pkg/core"

// HUD is a no-op placeholder that keeps the API identical to the ebiten
// build; headless binaries never construct it.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim) *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
