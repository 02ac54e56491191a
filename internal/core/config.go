package core

// RuntimeConfig contains host-side settings passed to a session at startup.
// It is separate from the engine config: it describes the terminal, not the world.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame signals per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle layout
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
