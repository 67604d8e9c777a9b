package config

import "math"

// DifficultyManager derives difficulty parameters from score.
// Everything is recomputed from score on each call, so the result never
// drifts and can be evaluated for any score without replaying a run.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns the speed multiplier for the given score (always >= 1).
func (d *DifficultyManager) Multiplier(score float64) float64 {
	if !d.cfg.Enabled || d.cfg.Divisor <= 0 || score <= 0 {
		return 1
	}
	return 1 + score/d.cfg.Divisor
}

// SpawnInterval returns the time between spawns in milliseconds for the given score.
// It never increases with score and never drops below the configured minimum.
func (d *DifficultyManager) SpawnInterval(score float64) float64 {
	base := math.Max(d.cfg.Spawn.MinMs, d.cfg.Spawn.BaseMs)
	if !d.cfg.Enabled || score <= 0 {
		return base
	}
	return math.Max(d.cfg.Spawn.MinMs, base-score*d.cfg.Spawn.PerPointMs)
}
