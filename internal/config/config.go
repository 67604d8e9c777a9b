// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"fmt"
	"math"
)

// SweetsConfig contains all tunables for the sweet-dodging game.
type SweetsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Avatar     AvatarConfig     `yaml:"avatar"`
	Sweets     SweetsParams     `yaml:"sweets"`
	Control    ControlConfig    `yaml:"control"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig maps terminal cells to play-field pixels.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Pixels per terminal row
}

// AvatarConfig defines the player avatar.
type AvatarConfig struct {
	Radius   float64 `yaml:"radius"`    // Collision radius in pixels
	Follow   float64 `yaml:"follow"`    // Fraction of remaining distance covered per tick
	TiltGain float64 `yaml:"tilt_gain"` // Tilt per px/ms of horizontal velocity
	TiltMax  float64 `yaml:"tilt_max"`  // Tilt clamp in radians
	TiltRate float64 `yaml:"tilt_rate"` // Tilt smoothing per millisecond
}

// SweetsParams defines projectile spawning, motion and hitboxes.
type SweetsParams struct {
	Radius      float64 `yaml:"radius"`       // Collision radius in pixels
	Forgiveness float64 `yaml:"forgiveness"`  // Subtracted from the radius sum before a hit counts
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance outside the field where sweets appear
	CullMargin  float64 `yaml:"cull_margin"`  // Distance outside the field where sweets are dropped
	SpeedMin    float64 `yaml:"speed_min"`    // Base speed in px/ms
	SpeedRange  float64 `yaml:"speed_range"`  // Random extra base speed in px/ms
	AimJitter   float64 `yaml:"aim_jitter"`   // Max aim deviation either side, radians
	MaxSpin     float64 `yaml:"max_spin"`     // Max cosmetic spin either side, radians/ms
}

// ControlConfig defines how control sources produce offsets.
type ControlConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // Landmark displacement multiplier
	MaxOffset   float64 `yaml:"max_offset"`  // Offsets are clamped to ±MaxOffset
	StaleMs     int     `yaml:"stale_ms"`    // Landmark frames older than this are ignored
	KeyStep     float64 `yaml:"key_step"`    // Offset change per key press
}

// ScoringConfig defines how score accumulates.
type ScoringConfig struct {
	PointsPerMs float64 `yaml:"points_per_ms"`
}

// DifficultyConfig defines the difficulty progression system.
// Multiplier and spawn interval are pure functions of score.
type DifficultyConfig struct {
	Enabled bool        `yaml:"enabled"`
	Divisor float64     `yaml:"divisor"` // multiplier = 1 + score/divisor
	Spawn   SpawnConfig `yaml:"spawn"`
}

// SpawnConfig defines the spawn interval schedule.
type SpawnConfig struct {
	BaseMs     float64 `yaml:"base_ms"`      // Interval at score 0
	PerPointMs float64 `yaml:"per_point_ms"` // Interval reduction per point
	MinMs      float64 `yaml:"min_ms"`       // Lower bound
}

// HitDistance returns the center distance below which a sweet hits the avatar.
func (c SweetsConfig) HitDistance() float64 {
	return c.Avatar.Radius + c.Sweets.Radius - c.Sweets.Forgiveness
}

// Validate reports the first tunable that would break the simulation.
func (c SweetsConfig) Validate() error {
	for name, v := range c.tunables() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %s must be a finite number, got %g", name, v)
		}
	}

	switch {
	case c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0:
		return fmt.Errorf("config: field cell size must be positive, got %gx%g", c.Field.CellWidth, c.Field.CellHeight)
	case c.Avatar.Radius <= 0:
		return fmt.Errorf("config: avatar.radius must be positive, got %g", c.Avatar.Radius)
	case c.Avatar.Follow <= 0 || c.Avatar.Follow > 1:
		return fmt.Errorf("config: avatar.follow must be in (0, 1], got %g", c.Avatar.Follow)
	case c.Sweets.Radius <= 0:
		return fmt.Errorf("config: sweets.radius must be positive, got %g", c.Sweets.Radius)
	case c.Sweets.Forgiveness < 0 || c.HitDistance() <= 0:
		return fmt.Errorf("config: sweets.forgiveness %g leaves no hitbox", c.Sweets.Forgiveness)
	case c.Sweets.CullMargin < c.Sweets.SpawnOffset:
		return fmt.Errorf("config: sweets.cull_margin %g must not be below spawn_offset %g", c.Sweets.CullMargin, c.Sweets.SpawnOffset)
	case c.Sweets.SpeedMin <= 0 || c.Sweets.SpeedRange < 0:
		return fmt.Errorf("config: sweets speed must be positive, got min=%g range=%g", c.Sweets.SpeedMin, c.Sweets.SpeedRange)
	case c.Control.MaxOffset <= 0:
		return fmt.Errorf("config: control.max_offset must be positive, got %g", c.Control.MaxOffset)
	case c.Scoring.PointsPerMs < 0:
		return fmt.Errorf("config: scoring.points_per_ms must not be negative, got %g", c.Scoring.PointsPerMs)
	case c.Difficulty.Enabled && c.Difficulty.Divisor <= 0:
		return fmt.Errorf("config: difficulty.divisor must be positive, got %g", c.Difficulty.Divisor)
	case c.Difficulty.Spawn.MinMs <= 0 || c.Difficulty.Spawn.BaseMs <= 0:
		return fmt.Errorf("config: spawn intervals must be positive, got base=%g min=%g", c.Difficulty.Spawn.BaseMs, c.Difficulty.Spawn.MinMs)
	case c.Difficulty.Spawn.PerPointMs < 0:
		return fmt.Errorf("config: difficulty.spawn.per_point_ms must not be negative, got %g", c.Difficulty.Spawn.PerPointMs)
	}
	return nil
}

// tunables returns every float setting keyed by its YAML path.
func (c SweetsConfig) tunables() map[string]float64 {
	return map[string]float64{
		"field.cell_width":              c.Field.CellWidth,
		"field.cell_height":             c.Field.CellHeight,
		"avatar.radius":                 c.Avatar.Radius,
		"avatar.follow":                 c.Avatar.Follow,
		"avatar.tilt_gain":              c.Avatar.TiltGain,
		"avatar.tilt_max":               c.Avatar.TiltMax,
		"avatar.tilt_rate":              c.Avatar.TiltRate,
		"sweets.radius":                 c.Sweets.Radius,
		"sweets.forgiveness":            c.Sweets.Forgiveness,
		"sweets.spawn_offset":           c.Sweets.SpawnOffset,
		"sweets.cull_margin":            c.Sweets.CullMargin,
		"sweets.speed_min":              c.Sweets.SpeedMin,
		"sweets.speed_range":            c.Sweets.SpeedRange,
		"sweets.aim_jitter":             c.Sweets.AimJitter,
		"sweets.max_spin":               c.Sweets.MaxSpin,
		"control.sensitivity":           c.Control.Sensitivity,
		"control.max_offset":            c.Control.MaxOffset,
		"control.key_step":              c.Control.KeyStep,
		"scoring.points_per_ms":         c.Scoring.PointsPerMs,
		"difficulty.divisor":            c.Difficulty.Divisor,
		"difficulty.spawn.base_ms":      c.Difficulty.Spawn.BaseMs,
		"difficulty.spawn.per_point_ms": c.Difficulty.Spawn.PerPointMs,
		"difficulty.spawn.min_ms":       c.Difficulty.Spawn.MinMs,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}
