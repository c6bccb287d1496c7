package app

import (
	"context"
	"time"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
)

// Command is a user request forwarded to a running Loop.
type Command int

const (
	// CmdTogglePause pauses or resumes stepping.
	CmdTogglePause Command = iota
	// CmdStep advances exactly one generation, even while paused.
	CmdStep
	// CmdReset restarts from generation 0 with the current seed.
	CmdReset
	// CmdReseed restarts from generation 0 with a time-based seed.
	CmdReseed
)

// Loop renders the current generation and then advances it, once per frame
// signal from the host. It owns the sim; only the goroutine running the loop
// may touch it.
type Loop struct {
	sim   core.Sim
	style render.Style
	pace  *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64
}

// NewLoop wraps sim. A positive tps gates generations with a FixedStep so
// frames may arrive faster than the simulation advances; tps <= 0 steps on
// every frame.
func NewLoop(sim core.Sim, style render.Style, tps int, seed int64) *Loop {
	l := &Loop{sim: sim, style: style, seed: seed}
	if tps > 0 {
		l.pace = core.NewFixedStep(tps)
	}
	return l
}

// Sim returns the simulation being driven.
func (l *Loop) Sim() core.Sim { return l.sim }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// Seed returns the seed of the current run.
func (l *Loop) Seed() int64 { return l.seed }

// Render draws the current generation onto s.
func (l *Loop) Render(s render.Surface) {
	render.Draw(s, l.sim, l.style)
}

// Advance steps the sim when due and reports whether it did.
func (l *Loop) Advance() bool {
	if l.tickOnce {
		l.tickOnce = false
		l.sim.Step()
		return true
	}
	if l.paused {
		return false
	}
	if l.pace != nil && !l.pace.ShouldStep() {
		return false
	}
	l.sim.Step()
	return true
}

// Apply handles a user command.
func (l *Loop) Apply(c Command) {
	switch c {
	case CmdTogglePause:
		l.paused = !l.paused
	case CmdStep:
		l.tickOnce = true
	case CmdReset:
		l.reset(l.seed)
	case CmdReseed:
		l.reset(time.Now().UnixNano())
	}
}

func (l *Loop) reset(seed int64) {
	l.seed = seed
	l.sim.Reset(seed)
	l.tickOnce = false
}

// Run drives the loop until ctx is cancelled or frames is closed. Each frame
// renders to s, calls present if set, then advances. Commands are applied
// between frames.
func (l *Loop) Run(ctx context.Context, s render.Surface, frames <-chan time.Time, cmds <-chan Command, present func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-cmds:
			l.Apply(c)
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			l.Render(s)
			if present != nil {
				present()
			}
			l.Advance()
		}
	}
}
