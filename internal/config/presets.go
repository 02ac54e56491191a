package config

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a named, static set of overrides applied on top of a loaded config.
// Presets never change values while a session runs.
type Preset struct {
	Name        string
	Description string
	Apply       func(cfg *Config)
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// RegisterPreset adds a preset to the registry.
// Panics if a preset with the same name is already registered.
func RegisterPreset(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.Name]; exists {
		panic(fmt.Sprintf("config: preset %q already registered", p.Name))
	}
	presets[p.Name] = p
}

// Presets returns all registered presets, sorted by name.
func Presets() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("config: unknown preset %q", name)
	}
	return p, nil
}

// ApplyPreset applies the named preset and re-validates the result.
// An empty name leaves cfg untouched.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, err := LookupPreset(name)
	if err != nil {
		return err
	}
	p.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", name, err)
	}
	return nil
}

func init() {
	RegisterPreset(Preset{
		Name:        "easy",
		Description: "Wider gaps, slower scroll, more time between pairs",
		Apply: func(cfg *Config) {
			cfg.Obstacles.GapSize = 260
			cfg.Obstacles.SpawnInterval = 1.9
			cfg.Physics.ScrollSpeed = 85
		},
	})
	RegisterPreset(Preset{
		Name:        "normal",
		Description: "The loaded tuning, unchanged",
		Apply:       func(*Config) {},
	})
	RegisterPreset(Preset{
		Name:        "hard",
		Description: "Narrow gaps and a fast scroll",
		Apply: func(cfg *Config) {
			cfg.Obstacles.GapSize = 170
			cfg.Obstacles.SpawnInterval = 1.3
			cfg.Physics.ScrollSpeed = 140
		},
	})
	RegisterPreset(Preset{
		Name:        "grid",
		Description: "Cell-sized world advanced by a fixed step",
		Apply: func(cfg *Config) {
			*cfg = Config{
				Physics: Physics{
					Gravity:         60,
					ImpulseVelocity: -18,
					ScrollSpeed:     20,
				},
				Obstacles: Obstacles{
					Width:         5,
					GapSize:       8,
					MinMargin:     3,
					SpawnInterval: 1.6,
					SpawnOffset:   2,
				},
				Entity: Entity{
					StartX: 10,
					Radius: 1,
				},
				PlayArea: PlayArea{
					Width:        80,
					Height:       24,
					GroundMargin: 2,
				},
				Simulation: Simulation{
					StepMode:      StepDiscrete,
					FixedStep:     1.0 / 30.0,
					MaxFrameDelta: 0.1,
				},
			}
		},
	})
}
