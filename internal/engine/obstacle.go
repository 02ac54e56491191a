package engine

import "github.com/vovakirdan/tui-flappy/internal/core"

// Obstacle is a pair of blocking regions separated by a vertical gap.
// Only X changes after placement, and Passed is set at most once.
type Obstacle struct {
	X       float64 // Left edge
	GapTop  float64 // Y where the passable gap begins
	GapSize float64
	Width   float64
	Passed  bool
}

// Advance scrolls the obstacle left by speed*dt.
func (o *Obstacle) Advance(dt, speed float64) {
	o.X -= speed * dt
}

// IsOffscreen reports whether the obstacle has fully left the play area.
func (o Obstacle) IsOffscreen() bool {
	return o.X+o.Width < 0
}

// Gap returns the vertical extent of the passable region.
func (o Obstacle) Gap() core.Span {
	return core.Span{Min: o.GapTop, Max: o.GapTop + o.GapSize}
}

// Horizontal returns the horizontal extent of the obstacle.
func (o Obstacle) Horizontal() core.Span {
	return core.Span{Min: o.X, Max: o.X + o.Width}
}

// CollidesWith reports whether the box hits either blocking region: the box
// overlaps the obstacle horizontally and is not fully inside the gap.
func (o Obstacle) CollidesWith(box core.Box) bool {
	if !o.Horizontal().Overlaps(box.Horizontal()) {
		return false
	}
	return !o.Gap().Contains(box.Vertical())
}

// IsPassedBy reports whether the obstacle's trailing edge is behind entityX.
func (o Obstacle) IsPassedBy(entityX float64) bool {
	return o.X+o.Width < entityX
}

// Pass marks the obstacle as passed once it is behind entityX.
// Returns true only on the call that performs the transition.
func (o *Obstacle) Pass(entityX float64) bool {
	if o.Passed || !o.IsPassedBy(entityX) {
		return false
	}
	o.Passed = true
	return true
}
