// Package engine implements the deterministic flappy simulation: entity
// physics, obstacle management, collision detection, scoring and the play
// state machine. It draws nothing and reads no input devices; hosts feed it
// elapsed time and input events and render the snapshots it returns.
package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the state of the play state machine.
type Phase int

const (
	PhaseMenu     Phase = iota // Waiting for Start
	PhasePlaying               // Simulation running
	PhaseGameOver              // Terminal collision happened, waiting for Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// StepResult is returned by Session.Tick after each simulation tick.
type StepResult struct {
	Snapshot Snapshot
	Quit     bool // The host should end the session
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed sets the seed of the obstacle RNG. Successive games within one
// session continue the same random stream, so a seed fixes a whole run.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Session is the complete mutable state of play: phase, score, entity and
// obstacles. It is not safe for concurrent use; each host owns one.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	logger *log.Logger

	phase     Phase
	score     int
	tick      uint64
	elapsed   float64
	verdict   Verdict
	entity    Entity
	obstacles *ObstacleManager
}

// NewSession validates cfg and builds a session in the Menu phase.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}

	s.reset()
	return s, nil
}

// Tick advances the session by one frame. Events are dispatched first; a
// tick whose events start or restart play does not run the simulation, so
// the returned snapshot shows the freshly reset state.
func (s *Session) Tick(dt float64, in core.InputFrame) StepResult {
	if in.Has(core.EventQuit) {
		return StepResult{Snapshot: s.Snapshot(), Quit: true}
	}

	switch s.phase {
	case PhaseMenu:
		if in.Has(core.EventStart) {
			s.begin()
		}

	case PhaseGameOver:
		if in.Has(core.EventRestart) {
			s.begin()
		}

	case PhasePlaying:
		if in.Has(core.EventRestart) {
			s.begin()
			break
		}
		if in.Has(core.EventImpulse) {
			s.entity.ApplyImpulse()
		}
		s.step(s.cfg.EffectiveStep(dt))
	}

	return StepResult{Snapshot: s.Snapshot()}
}

// step runs the simulation pipeline: integrate, manage obstacles, detect
// collisions, score, transition. Collision sees this tick's positions.
func (s *Session) step(dt float64) {
	s.tick++
	s.elapsed += dt

	s.entity.Integrate(dt)

	passed, spawned := s.obstacles.Update(dt, s.entity.X)
	if spawned > 0 && s.obstacles.Len() > 0 {
		o := s.obstacles.Obstacles()[s.obstacles.Len()-1]
		s.logger.Debug("obstacle spawned", "tick", s.tick, "count", spawned, "x", o.X, "gap_top", o.GapTop)
	}

	verdict := Detect(s.entity.Box(), s.obstacles.Obstacles(), s.cfg.GroundY())

	s.score += passed

	if verdict.Terminal() {
		s.verdict = verdict
		s.setPhase(PhaseGameOver)
	}
}

// begin discards the current play-through and enters Playing.
func (s *Session) begin() {
	s.reset()
	s.setPhase(PhasePlaying)
}

// reset rebuilds all per-game state. The RNG stream is kept.
func (s *Session) reset() {
	s.score = 0
	s.tick = 0
	s.elapsed = 0
	s.verdict = VerdictNone
	s.entity = NewEntity(s.cfg)
	s.obstacles = NewObstacleManager(s.cfg, s.rng)
	s.logger.Debug("session reset")
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.logger.Debug("phase change", "from", s.phase, "to", p, "score", s.score, "cause", s.verdict)
	s.phase = p
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the number of obstacles passed in the current play-through.
func (s *Session) Score() int {
	return s.score
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}
