// Package term runs a simulation in a terminal through tcell.
package term

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const statusRows = 1

// Style returns the terminal rendering style: black dead cells, no margin
// and no outlines.
func Style() render.Style {
	st := render.DefaultStyle()
	st.Margin = 0
	st.StrokeWidth = 0
	st.Dead = color.Black
	return st
}

// Run drives loop on screen at fps frames per second until the user quits
// (q, Esc or Ctrl-C) or ctx is done. The caller owns screen initialisation
// and Fini; the key-polling goroutine only exits once Fini is called, even
// after Run has returned. Space pauses, n steps once, r resets and s reseeds.
func Run(ctx context.Context, screen tcell.Screen, loop *app.Loop, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds := make(chan app.Command)
	go pollKeys(ctx, screen, cmds, cancel)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	surface := NewSurface(screen, statusRows)
	present := func() {
		drawStatus(screen, ui.StatusLines(loop.Sim(), loop.Paused()))
		screen.Show()
	}
	err := loop.Run(ctx, surface, ticker.C, cmds, present)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func pollKeys(ctx context.Context, screen tcell.Screen, cmds chan<- app.Command, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		var cmd app.Command
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			continue
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				quit()
				return
			case ev.Rune() == ' ':
				cmd = app.CmdTogglePause
			case ev.Rune() == 'n':
				cmd = app.CmdStep
			case ev.Rune() == 'r':
				cmd = app.CmdReset
			case ev.Rune() == 's':
				cmd = app.CmdReseed
			default:
				continue
			}
		default:
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func drawStatus(screen tcell.Screen, lines []string) {
	w, _ := screen.Size()
	status := []rune(strings.Join(lines, "  "))
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		screen.SetContent(x, 0, r, nil, style)
	}
}
