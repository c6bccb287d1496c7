//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
)

func runGUI(*app.Config, core.Sim) error {
	fmt.Fprintln(os.Stderr, "The GUI backend requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life`, or pick -backend term or png.")
	os.Exit(2)
	return nil
}
