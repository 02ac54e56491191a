package engine

// EntityView is a read-only copy of the entity state.
type EntityView struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Radius    float64 `yaml:"radius"`
	VelocityY float64 `yaml:"velocity_y"`
}

// ObstacleView is a read-only copy of one obstacle.
type ObstacleView struct {
	X       float64 `yaml:"x"`
	GapTop  float64 `yaml:"gap_top"`
	GapSize float64 `yaml:"gap_size"`
	Width   float64 `yaml:"width"`
	Passed  bool    `yaml:"passed"`
}

// Snapshot captures everything a renderer needs to draw one frame.
// It shares no memory with the session.
type Snapshot struct {
	Tick       uint64         `yaml:"tick"`
	Elapsed    float64        `yaml:"elapsed"` // Simulated seconds of the current play-through
	Phase      Phase          `yaml:"phase"`
	Score      int            `yaml:"score"`
	Collision  Verdict        `yaml:"collision"`
	Entity     EntityView     `yaml:"entity"`
	Obstacles  []ObstacleView `yaml:"obstacles"`
	GroundY    float64        `yaml:"ground_y"`
	PlayWidth  float64        `yaml:"play_width"`
	PlayHeight float64        `yaml:"play_height"`
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	live := s.obstacles.Obstacles()
	obstacles := make([]ObstacleView, len(live))
	for i, o := range live {
		obstacles[i] = ObstacleView{
			X:       o.X,
			GapTop:  o.GapTop,
			GapSize: o.GapSize,
			Width:   o.Width,
			Passed:  o.Passed,
		}
	}

	return Snapshot{
		Tick:      s.tick,
		Elapsed:   s.elapsed,
		Phase:     s.phase,
		Score:     s.score,
		Collision: s.verdict,
		Entity: EntityView{
			X:         s.entity.X,
			Y:         s.entity.Y,
			Radius:    s.entity.Radius,
			VelocityY: s.entity.VelocityY,
		},
		Obstacles:  obstacles,
		GroundY:    s.cfg.GroundY(),
		PlayWidth:  s.cfg.PlayArea.Width,
		PlayHeight: s.cfg.PlayArea.Height,
	}
}
