package engine

import "github.com/vovakirdan/tui-flappy/internal/core"

// Verdict is the outcome of a collision check.
type Verdict int

const (
	VerdictNone     Verdict = iota // No terminal collision
	VerdictGround                  // Entity reached the ground line
	VerdictObstacle                // Entity hit a blocking region
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictNone:
		return "none"
	case VerdictGround:
		return "ground"
	case VerdictObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Terminal reports whether the verdict ends the game.
func (v Verdict) Terminal() bool {
	return v != VerdictNone
}

// Detect checks the entity box against the ground and every obstacle.
// It is a pure function: it reads its arguments only and stops at the first hit.
// The top edge is not checked here; the entity clamps against it instead.
func Detect(entity core.Box, obstacles []Obstacle, groundY float64) Verdict {
	if entity.Vertical().Max >= groundY {
		return VerdictGround
	}
	for _, o := range obstacles {
		if o.CollidesWith(entity) {
			return VerdictObstacle
		}
	}
	return VerdictNone
}
