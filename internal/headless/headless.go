// Package headless drives a session without a terminal, advancing it by a
// fixed step under a scripted pilot. It backs the sim command and makes
// whole runs reproducible from a seed.
package headless

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Pilot decides which events to send before each tick.
type Pilot interface {
	Events(tick int, snap engine.Snapshot) []core.Event
}

// Cadence flaps every N ticks. Zero never flaps.
type Cadence int

// Events implements Pilot.
func (c Cadence) Events(tick int, _ engine.Snapshot) []core.Event {
	if c > 0 && tick%int(c) == 0 {
		return []core.Event{core.EventImpulse}
	}
	return nil
}

// Tracker flaps whenever the entity falls below the middle of the next gap.
type Tracker struct{}

// Events implements Pilot.
func (Tracker) Events(_ int, snap engine.Snapshot) []core.Event {
	e := snap.Entity
	if e.VelocityY < 0 {
		return nil
	}
	target := snap.GroundY / 2
	for _, o := range snap.Obstacles {
		if o.X+o.Width >= e.X-e.Radius {
			target = o.GapTop + o.GapSize/2
			break
		}
	}
	if e.Y > target {
		return []core.Event{core.EventImpulse}
	}
	return nil
}

// PilotByName resolves a pilot from its command-line name.
func PilotByName(name string, every int) (Pilot, error) {
	switch name {
	case "cadence", "":
		return Cadence(every), nil
	case "tracker":
		return Tracker{}, nil
	case "idle":
		return Cadence(0), nil
	}
	return nil, fmt.Errorf("unknown pilot %q (want cadence, tracker or idle)", name)
}

// Options configures a run.
type Options struct {
	MaxTicks int     // Upper bound on simulated ticks
	Step     float64 // Seconds per tick
	Pilot    Pilot
	// OnTick, if set, observes every snapshot after its tick.
	OnTick func(engine.Snapshot)
}

// Result summarizes a finished run.
type Result struct {
	Final engine.Snapshot `yaml:"final"`
	Ticks int             `yaml:"ticks"`
}

// Run starts the session from the menu and plays until game over or
// MaxTicks simulated ticks, whichever comes first.
func Run(s *engine.Session, opts Options) Result {
	if opts.Pilot == nil {
		opts.Pilot = Cadence(0)
	}

	snap := s.Snapshot()
	if s.Phase() != engine.PhasePlaying {
		start := core.EventStart
		if s.Phase() == engine.PhaseGameOver {
			start = core.EventRestart
		}
		snap = s.Tick(0, core.NewInputFrame(start)).Snapshot
	}

	ticks := 0
	for ticks < opts.MaxTicks && snap.Phase == engine.PhasePlaying {
		in := core.NewInputFrame(opts.Pilot.Events(ticks, snap)...)
		snap = s.Tick(opts.Step, in).Snapshot
		ticks++
		if opts.OnTick != nil {
			opts.OnTick(snap)
		}
	}
	return Result{Final: snap, Ticks: ticks}
}
