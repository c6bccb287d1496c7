package ui

import (
	"strings"

	"lifegrid/pkg/core"
)

// StatusLines describes the sim for an on-screen panel: its name, the
// parameter snapshot when the sim provides one, and the pause state.
func StatusLines(sim core.Sim, paused bool) []string {
	lines := []string{title(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, provider.Parameters().Lines()...)
	}
	if paused {
		lines = append(lines, "[paused]")
	}
	return lines
}

func title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Simulation"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
