package engine

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Entity is the falling actor. Only its vertical state changes; X and Radius
// are fixed for the lifetime of a session.
type Entity struct {
	X         float64
	Y         float64 // Center, y grows downward
	VelocityY float64
	Radius    float64

	gravity float64
	impulse float64
}

// NewEntity places a fresh entity at the configured start position at rest.
func NewEntity(cfg config.Config) Entity {
	return Entity{
		X:       cfg.Entity.StartX,
		Y:       cfg.StartY(),
		Radius:  cfg.Entity.Radius,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.ImpulseVelocity,
	}
}

// ApplyImpulse overwrites the vertical velocity with the impulse velocity.
// Impulses do not stack.
func (e *Entity) ApplyImpulse() {
	e.VelocityY = e.impulse
}

// Integrate advances the entity by dt seconds and reports whether it was
// stopped by the ceiling. There is no floor clamp: reaching the ground is a
// collision, not a physics event.
func (e *Entity) Integrate(dt float64) bool {
	e.VelocityY += e.gravity * dt
	e.Y += e.VelocityY * dt

	if e.Y < e.Radius {
		e.Y = e.Radius
		e.VelocityY = 0
		return true
	}
	return false
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.BoxAround(e.X, e.Y, e.Radius)
}
