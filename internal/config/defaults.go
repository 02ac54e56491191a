package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 400x600 play area with a
// 100 unit ground strip, tuned for a relaxed pace at 60 FPS.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:         1200,
			ImpulseVelocity: -300,
			ScrollSpeed:     100,
		},
		Obstacles: Obstacles{
			Width:         70,
			GapSize:       220,
			MinMargin:     80,
			SpawnInterval: 1.6,
			SpawnOffset:   10,
		},
		Entity: Entity{
			StartX: 60,
			Radius: 16,
		},
		PlayArea: PlayArea{
			Width:        400,
			Height:       600,
			GroundMargin: 100,
		},
		Simulation: Simulation{
			StepMode:      StepContinuous,
			FixedStep:     1.0 / 60.0,
			MaxFrameDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
