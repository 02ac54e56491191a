package engine

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var noInput = core.NewInputFrame()

func newPlaying(t *testing.T, cfg config.Config, seed int64) *Session {
	t.Helper()
	s, err := NewSession(cfg, WithSeed(seed))
	require.NoError(t, err)
	res := s.Tick(0, core.NewInputFrame(core.EventStart))
	require.Equal(t, PhasePlaying, res.Snapshot.Phase)
	return s
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.GapSize = 1000

	s, err := NewSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewSessionRejectsNaNGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = math.NaN()

	s, err := NewSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s, err := NewSession(config.Default())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, PhaseMenu, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Empty(t, snap.Obstacles)
	assert.Equal(t, 300.0, snap.Entity.Y)
	assert.Equal(t, 500.0, snap.GroundY)
}

func TestMenuIgnoresUnrelatedInput(t *testing.T) {
	s, err := NewSession(config.Default())
	require.NoError(t, err)
	before := s.Snapshot()

	for _, e := range []core.Event{core.EventImpulse, core.EventRestart} {
		res := s.Tick(0.1, core.NewInputFrame(e))
		assert.False(t, res.Quit)
		assert.Equal(t, before, res.Snapshot, "event %v", e)
	}

	// Time passing in the menu does not move anything
	s.Tick(1.0, noInput)
	assert.Equal(t, before, s.Snapshot())
}

func TestStartTickDoesNotSimulate(t *testing.T) {
	s, err := NewSession(config.Default())
	require.NoError(t, err)

	res := s.Tick(0.5, core.NewInputFrame(core.EventStart, core.EventImpulse))
	assert.Equal(t, PhasePlaying, res.Snapshot.Phase)
	assert.Zero(t, res.Snapshot.Tick)
	assert.Equal(t, 300.0, res.Snapshot.Entity.Y)
	assert.Zero(t, res.Snapshot.Entity.VelocityY)
}

func TestFreeFallMatchesClosedForm(t *testing.T) {
	// gravity 1200, dt 0.1, y0 300, radius 16, ground 500:
	// y_n = 300 + 1200*0.01*n(n+1)/2 = 300 + 6n(n+1)
	s := newPlaying(t, config.Default(), 1)

	for n := 1; n <= 5; n++ {
		res := s.Tick(0.1, noInput)
		require.Equal(t, PhasePlaying, res.Snapshot.Phase, "tick %d", n)
		assert.InDelta(t, 300+6*float64(n*(n+1)), res.Snapshot.Entity.Y, 1e-6, "tick %d", n)
		assert.InDelta(t, 120*float64(n), res.Snapshot.Entity.VelocityY, 1e-6, "tick %d", n)
	}

	// Tick 6: y = 552, bottom edge 568 >= 500
	res := s.Tick(0.1, noInput)
	assert.Equal(t, PhaseGameOver, res.Snapshot.Phase)
	assert.Equal(t, uint64(6), res.Snapshot.Tick)
	assert.Equal(t, VerdictGround, res.Snapshot.Collision)
	assert.InDelta(t, 552.0, res.Snapshot.Entity.Y, 1e-6)
}

func TestImpulseMovesUp(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)

	res := s.Tick(1.0/60.0, core.NewInputFrame(core.EventImpulse))
	assert.Less(t, res.Snapshot.Entity.Y, 300.0)
	assert.Less(t, res.Snapshot.Entity.VelocityY, 0.0)
}

func TestGameOverIsSticky(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)
	for s.Phase() == PhasePlaying {
		s.Tick(0.1, noInput)
	}
	over := s.Snapshot()

	for _, e := range []core.Event{core.EventNone, core.EventImpulse, core.EventStart} {
		res := s.Tick(0.1, core.NewInputFrame(e))
		assert.Equal(t, over, res.Snapshot, "event %v", e)
	}
}

func TestRestartYieldsFreshSession(t *testing.T) {
	cfg := config.Default()
	s := newPlaying(t, cfg, 99)

	// Play long enough to have obstacles and some score, then crash
	for i := 0; i < 400 && s.Phase() == PhasePlaying; i++ {
		in := noInput
		if i%12 == 0 {
			in = core.NewInputFrame(core.EventImpulse)
		}
		s.Tick(1.0/60.0, in)
	}
	for s.Phase() == PhasePlaying {
		s.Tick(0.1, noInput)
	}
	require.Equal(t, PhaseGameOver, s.Phase())

	res := s.Tick(0.1, core.NewInputFrame(core.EventRestart))

	fresh := newPlaying(t, cfg, 12345)
	assert.Equal(t, fresh.Snapshot(), res.Snapshot)
	assert.Zero(t, s.obstacles.SpawnTimer())
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestRestartWhilePlaying(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)
	s.Tick(0.1, noInput)
	s.Tick(0.1, noInput)

	res := s.Tick(0.1, core.NewInputFrame(core.EventRestart))
	assert.Equal(t, PhasePlaying, res.Snapshot.Phase)
	assert.Zero(t, res.Snapshot.Tick)
	assert.Equal(t, 300.0, res.Snapshot.Entity.Y)
}

func TestQuitDoesNotMutate(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)
	s.Tick(0.1, noInput)
	before := s.Snapshot()

	res := s.Tick(0.1, core.NewInputFrame(core.EventQuit, core.EventImpulse))
	assert.True(t, res.Quit)
	assert.Equal(t, before, res.Snapshot)
}

func TestScoreOncePerObstacle(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = 1 // barely falls, so it survives the whole run
	s := newPlaying(t, cfg, 1)

	// Gap [200, 420] comfortably contains the entity span [284, 316]
	s.obstacles.obstacles = append(s.obstacles.obstacles, Obstacle{X: 85, GapTop: 200, GapSize: 220, Width: 70})

	for i := 1; i <= 9; i++ {
		s.Tick(0.1, noInput)
	}
	assert.Zero(t, s.Score(), "trailing edge at x=-5+70 is not behind x=60 yet")

	s.Tick(0.1, noInput)
	assert.Equal(t, 1, s.Score())

	for i := 0; i < 18; i++ {
		s.Tick(0.1, noInput)
	}
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.Score())
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)

	// Gap far below the entity: the upper region covers it
	s.obstacles.obstacles = append(s.obstacles.obstacles, Obstacle{X: 50, GapTop: 400, GapSize: 80, Width: 70})

	res := s.Tick(1.0/60.0, noInput)
	assert.Equal(t, PhaseGameOver, res.Snapshot.Phase)
	assert.Equal(t, VerdictObstacle, res.Snapshot.Collision)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newPlaying(t, config.Default(), 2024)
		var snap Snapshot
		for i := 0; i < 600; i++ {
			in := noInput
			if i%14 == 0 {
				in = core.NewInputFrame(core.EventImpulse)
			}
			snap = s.Tick(1.0/60.0, in).Snapshot
			if snap.Phase == PhaseGameOver {
				break
			}
		}
		return snap
	}

	assert.Equal(t, run(), run())
}

func TestDiscreteModeIgnoresHostDt(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.ApplyPreset(&cfg, "grid"))
	s := newPlaying(t, cfg, 1)

	fixed := cfg.Simulation.FixedStep
	res := s.Tick(5.0, noInput)
	assert.InDelta(t, cfg.StartY()+cfg.Physics.Gravity*fixed*fixed, res.Snapshot.Entity.Y, 1e-9)
	assert.Equal(t, PhasePlaying, res.Snapshot.Phase)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)
	s.obstacles.Spawn()

	snap := s.Snapshot()
	snap.Obstacles[0].X = -1000
	snap.Entity.Y = -1

	assert.Equal(t, 410.0, s.obstacles.Obstacles()[0].X)
	assert.Equal(t, 300.0, s.entity.Y)
}

func TestLoggerReceivesPhaseChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s, err := NewSession(config.Default(), WithLogger(logger))
	require.NoError(t, err)
	s.Tick(0, core.NewInputFrame(core.EventStart))

	assert.Contains(t, buf.String(), "phase change")
	assert.Contains(t, buf.String(), "playing")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "menu", PhaseMenu.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestElapsedTracksPlayTime(t *testing.T) {
	s := newPlaying(t, config.Default(), 1)
	for i := 0; i < 3; i++ {
		s.Tick(0.1, noInput)
	}
	assert.InDelta(t, 0.3, s.Snapshot().Elapsed, 1e-9)

	res := s.Tick(0.1, core.NewInputFrame(core.EventRestart))
	assert.Zero(t, res.Snapshot.Elapsed)
}
