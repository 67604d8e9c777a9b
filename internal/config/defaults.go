package config

import (
	_ "embed"
)

//go:embed defaults/sweets.yaml
var defaultSweetsYAML []byte

// DefaultSweetsConfig returns the default game configuration.
// It matches defaults/sweets.yaml and is used when the embedded file cannot be parsed.
func DefaultSweetsConfig() SweetsConfig {
	return SweetsConfig{
		Field: FieldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Avatar: AvatarConfig{
			Radius:   25,
			Follow:   0.25,
			TiltGain: 0.8,
			TiltMax:  0.4,
			TiltRate: 0.01,
		},
		Sweets: SweetsParams{
			Radius:      20,
			Forgiveness: 12,
			SpawnOffset: 50,
			CullMargin:  100,
			SpeedMin:    0.25,
			SpeedRange:  0.15,
			AimJitter:   0.2,
			MaxSpin:     0.0025,
		},
		Control: ControlConfig{
			Sensitivity: 2.5,
			MaxOffset:   2.0,
			StaleMs:     500,
			KeyStep:     0.05,
		},
		Scoring: ScoringConfig{
			PointsPerMs: 0.01,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Divisor: 400,
			Spawn: SpawnConfig{
				BaseMs:     1200,
				PerPointMs: 4,
				MinMs:      250,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSweetsYAML
}
