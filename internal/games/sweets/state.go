package sweets

import (
	"math"

	"github.com/vovakirdan/lose-weight/internal/core"
)

// PaletteSize is the number of cosmetic sweet kinds.
const PaletteSize = 12

// Phase is the lifecycle phase of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota // Avatar centered, waiting for a start signal
	PhaseRunning                 // Simulation advances every tick
	PhaseEnded                   // Simulation frozen, summary produced
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Avatar is the player-controlled character.
type Avatar struct {
	Pos  core.Vec2 // Center in field pixels
	Vel  core.Vec2 // Positional delta of the last tick, px/ms
	Tilt float64   // Smoothed lean in radians, presentation only
}

// Cosmetic holds the render-only fields of a sweet.
// Nothing in the simulation reads them.
type Cosmetic struct {
	Kind     int     // Index into the sweet palette
	Rotation float64 // Radians
	Spin     float64 // Radians per millisecond
}

// Projectile is a sweet flying across the field.
// Velocity is fixed at spawn time.
type Projectile struct {
	Pos  core.Vec2
	Vel  core.Vec2 // px/ms
	Look Cosmetic
}

// RunState is the complete mutable state of one play session.
type RunState struct {
	Avatar     Avatar
	Sweets     []Projectile
	Score      float64
	Difficulty float64
	SpawnTimer float64 // Milliseconds since the last spawn
	Phase      Phase

	Elapsed float64 // Running time in milliseconds
	Spawned int
	Dodged  int // Sweets that left the field without a hit
}

// newRunState builds a fresh run with the avatar at center.
func newRunState(center core.Vec2) *RunState {
	return &RunState{
		Avatar:     Avatar{Pos: center},
		Sweets:     make([]Projectile, 0, 16),
		Difficulty: 1,
		Phase:      PhaseNotStarted,
	}
}

// Field is the play-field size in pixels.
type Field struct {
	W, H float64
}

// Center returns the middle of the field.
func (f Field) Center() core.Vec2 {
	return core.V(f.W/2, f.H/2)
}

// Inset clamps p to the field shrunk by r on every side.
// When the field is narrower than 2r the axis collapses to its center.
func (f Field) Inset(p core.Vec2, r float64) core.Vec2 {
	return core.V(insetAxis(p.X, f.W, r), insetAxis(p.Y, f.H, r))
}

func insetAxis(v, size, r float64) float64 {
	if size < 2*r {
		return size / 2
	}
	return core.ClampF(v, r, size-r)
}

// Outside reports whether p lies beyond the field by more than margin.
func (f Field) Outside(p core.Vec2, margin float64) bool {
	return p.X < -margin || p.X > f.W+margin || p.Y < -margin || p.Y > f.H+margin
}

func validSize(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
