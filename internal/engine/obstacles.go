package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ObstacleManager handles spawning, movement, pass detection and removal of
// obstacles. The sequence is kept in spawn order, which is also nearest-first.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        config.Config
	spawnTimer float64 // Seconds since the last spawn
}

// NewObstacleManager creates an empty manager drawing gap positions from rng.
func NewObstacleManager(cfg config.Config, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Update runs one tick of obstacle management: scroll, spawn, pass detection
// and recycling, in that order. Returns the number of obstacles passed this
// tick (for scoring) and the number spawned.
//
// One obstacle spawns per elapsed spawn interval. When a long tick covers
// several intervals, each late obstacle starts as far left as it would have
// scrolled since it was due, so spacing does not depend on dt.
func (m *ObstacleManager) Update(dt, entityX float64) (passed, spawned int) {
	m.Advance(dt)

	m.spawnTimer += dt
	interval := m.cfg.Obstacles.SpawnInterval
	for m.spawnTimer >= interval {
		m.spawnTimer -= interval
		m.spawnAt(m.cfg.SpawnX() - m.lateBy()*m.cfg.Physics.ScrollSpeed)
		spawned++
	}

	for i := range m.obstacles {
		if m.obstacles[i].Pass(entityX) {
			passed++
		}
	}

	m.Recycle()
	return passed, spawned
}

// lateBy returns how long ago the most recent spawn was due. Float residue
// from accumulating regular ticks is ignored.
func (m *ObstacleManager) lateBy() float64 {
	if m.spawnTimer < lateEpsilon {
		return 0
	}
	return m.spawnTimer
}

const lateEpsilon = 1e-9

// Advance scrolls every obstacle left by the same distance.
func (m *ObstacleManager) Advance(dt float64) {
	for i := range m.obstacles {
		m.obstacles[i].Advance(dt, m.cfg.Physics.ScrollSpeed)
	}
}

// Spawn appends a new obstacle just past the right edge of the play area.
func (m *ObstacleManager) Spawn() Obstacle {
	return m.spawnAt(m.cfg.SpawnX())
}

func (m *ObstacleManager) spawnAt(x float64) Obstacle {
	o := Obstacle{
		X:       x,
		GapTop:  m.drawGapTop(),
		GapSize: m.cfg.Obstacles.GapSize,
		Width:   m.cfg.Obstacles.Width,
	}
	m.obstacles = append(m.obstacles, o)
	return o
}

// drawGapTop picks a gap position uniformly from the configured range.
func (m *ObstacleManager) drawGapTop() float64 {
	lo, hi := m.cfg.GapTopRange()
	gapTop := lo
	if hi > lo {
		gapTop = lo + m.rng.Float64()*(hi-lo)
	}
	if m.cfg.Simulation.StepMode == config.StepDiscrete {
		// Snap to whole cells without dropping below lo
		gapTop = math.Max(lo, math.Floor(gapTop))
	}
	return gapTop
}

// Recycle removes obstacles that have scrolled off the left edge, keeping the
// relative order of the rest. Returns the number removed.
func (m *ObstacleManager) Recycle() int {
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if !o.IsOffscreen() {
			kept = append(kept, o)
		}
	}
	removed := len(m.obstacles) - len(kept)
	// Clear the tail of the backing array
	for i := len(kept); i < len(m.obstacles); i++ {
		m.obstacles[i] = Obstacle{}
	}
	m.obstacles = kept
	return removed
}

// Obstacles returns the live obstacles, nearest first.
// The slice is owned by the manager and must not be modified.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// SpawnTimer returns the seconds accumulated toward the next spawn.
func (m *ObstacleManager) SpawnTimer() float64 {
	return m.spawnTimer
}
