// Package config provides YAML-based configuration loading, validation and
// static presets for the flappy engine.
package config

// StepMode selects how a tick's elapsed time is interpreted.
type StepMode string

const (
	// StepContinuous integrates with the wall-clock dt supplied by the host.
	StepContinuous StepMode = "continuous"
	// StepDiscrete ignores the host dt and advances by Simulation.FixedStep.
	StepDiscrete StepMode = "discrete"
)

// Config contains every tunable of a play session.
// It is treated as immutable once a session has been built from it.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Entity     Entity     `yaml:"entity"`
	PlayArea   PlayArea   `yaml:"play_area"`
	Simulation Simulation `yaml:"simulation"`
}

// Physics defines motion parameters, in play-area units and seconds.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // units/s^2, positive = down
	ImpulseVelocity float64 `yaml:"impulse_velocity"` // units/s, negative = up
	ScrollSpeed     float64 `yaml:"scroll_speed"`     // units/s
}

// Obstacles defines obstacle geometry and spawn cadence.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	MinMargin     float64 `yaml:"min_margin"`     // minimum height of each blocking region
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between spawns
	SpawnOffset   float64 `yaml:"spawn_offset"`   // distance past the right edge where obstacles appear
}

// Entity defines the falling actor.
type Entity struct {
	StartX float64 `yaml:"start_x"`
	Radius float64 `yaml:"radius"`
}

// PlayArea defines the bounds of the world.
type PlayArea struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"`
}

// Simulation defines how ticks are paced.
type Simulation struct {
	StepMode      StepMode `yaml:"step_mode"`
	FixedStep     float64  `yaml:"fixed_step"`      // seconds per tick in discrete mode
	MaxFrameDelta float64  `yaml:"max_frame_delta"` // hosts cap measured dt to this
}

// GroundY returns the y-coordinate of the ground line.
func (c Config) GroundY() float64 {
	return c.PlayArea.Height - c.PlayArea.GroundMargin
}

// StartY returns the entity's initial vertical position.
func (c Config) StartY() float64 {
	return c.PlayArea.Height / 2
}

// GapTopRange returns the closed range gap tops are drawn from.
// A degenerate range collapses to the lower bound.
func (c Config) GapTopRange() (lo, hi float64) {
	lo = c.Obstacles.MinMargin
	hi = c.GroundY() - c.Obstacles.GapSize - c.Obstacles.MinMargin
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// SpawnX returns the x-coordinate at which new obstacles appear.
func (c Config) SpawnX() float64 {
	return c.PlayArea.Width + c.Obstacles.SpawnOffset
}

// EffectiveStep maps a host-supplied dt to the dt the engine integrates with.
func (c Config) EffectiveStep(dt float64) float64 {
	if c.Simulation.StepMode == StepDiscrete {
		return c.Simulation.FixedStep
	}
	if dt < 0 {
		return 0
	}
	return dt
}
