package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration for values that would make a session
// unplayable. All violations are reported together.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	// Bounds below assume finite values
	nonFinite := false
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			fail("%s must be a finite number, got %g", f.name, f.value)
			nonFinite = true
		}
	}
	if nonFinite {
		return errors.Join(errs...)
	}

	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		fail("play_area must have positive size, got %gx%g", c.PlayArea.Width, c.PlayArea.Height)
	}
	if c.PlayArea.GroundMargin < 0 || c.PlayArea.GroundMargin >= c.PlayArea.Height {
		fail("play_area.ground_margin %g must be in [0, height)", c.PlayArea.GroundMargin)
	}

	if c.Physics.Gravity <= 0 {
		fail("physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.ImpulseVelocity >= 0 {
		fail("physics.impulse_velocity must be negative (upward), got %g", c.Physics.ImpulseVelocity)
	}
	if c.Physics.ScrollSpeed <= 0 {
		fail("physics.scroll_speed must be positive, got %g", c.Physics.ScrollSpeed)
	}

	if c.Obstacles.Width <= 0 {
		fail("obstacles.width must be positive, got %g", c.Obstacles.Width)
	}
	if c.Obstacles.GapSize <= 0 {
		fail("obstacles.gap_size must be positive, got %g", c.Obstacles.GapSize)
	}
	if c.Obstacles.MinMargin < 0 {
		fail("obstacles.min_margin must not be negative, got %g", c.Obstacles.MinMargin)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		fail("obstacles.spawn_interval must be positive, got %g", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.SpawnOffset < 0 {
		fail("obstacles.spawn_offset must not be negative, got %g", c.Obstacles.SpawnOffset)
	}
	if need := c.Obstacles.GapSize + 2*c.Obstacles.MinMargin; need > c.GroundY() {
		fail("gap_size + 2*min_margin = %g exceeds playable height %g", need, c.GroundY())
	}

	if c.Entity.Radius <= 0 {
		fail("entity.radius must be positive, got %g", c.Entity.Radius)
	}
	if c.Entity.StartX < 0 || c.Entity.StartX > c.PlayArea.Width {
		fail("entity.start_x %g is outside the play area", c.Entity.StartX)
	}
	if 2*c.Entity.Radius > c.Obstacles.GapSize {
		fail("entity diameter %g does not fit through gap_size %g", 2*c.Entity.Radius, c.Obstacles.GapSize)
	}
	if y := c.StartY(); y < c.Entity.Radius || y+c.Entity.Radius >= c.GroundY() {
		fail("entity start height %g with radius %g is outside the playable height", y, c.Entity.Radius)
	}

	switch c.Simulation.StepMode {
	case StepContinuous:
	case StepDiscrete:
		if c.Simulation.FixedStep <= 0 {
			fail("simulation.fixed_step must be positive in discrete mode, got %g", c.Simulation.FixedStep)
		}
	default:
		fail("simulation.step_mode %q is not one of %q, %q", c.Simulation.StepMode, StepContinuous, StepDiscrete)
	}
	if c.Simulation.MaxFrameDelta < 0 {
		fail("simulation.max_frame_delta must not be negative, got %g", c.Simulation.MaxFrameDelta)
	}

	return errors.Join(errs...)
}

type namedFloat struct {
	name  string
	value float64
}

func (c Config) floatFields() []namedFloat {
	return []namedFloat{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.impulse_velocity", c.Physics.ImpulseVelocity},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap_size", c.Obstacles.GapSize},
		{"obstacles.min_margin", c.Obstacles.MinMargin},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"obstacles.spawn_offset", c.Obstacles.SpawnOffset},
		{"entity.start_x", c.Entity.StartX},
		{"entity.radius", c.Entity.Radius},
		{"play_area.width", c.PlayArea.Width},
		{"play_area.height", c.PlayArea.Height},
		{"play_area.ground_margin", c.PlayArea.GroundMargin},
		{"simulation.fixed_step", c.Simulation.FixedStep},
		{"simulation.max_frame_delta", c.Simulation.MaxFrameDelta},
	}
}
