package sweets

import (
	"math"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/core"
)

// Edge is a side of the field a sweet enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawner creates sweets just outside the field, aimed at the avatar.
type Spawner struct {
	cfg config.SweetsParams
	rng Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SweetsParams, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Spawn returns a new sweet for a field of the given size.
// The sweet heads toward target, give or take the aim jitter, at a speed
// scaled by difficulty. Random draws happen in a fixed order: edge,
// position along the edge, aim deviation, speed, then cosmetics.
func (sp *Spawner) Spawn(field Field, target core.Vec2, difficulty float64) Projectile {
	edge := Edge(sp.pick(4))
	along := sp.rng.Float64()
	off := sp.cfg.SpawnOffset

	var pos core.Vec2
	switch edge {
	case EdgeTop:
		pos = core.V(along*field.W, -off)
	case EdgeRight:
		pos = core.V(field.W+off, along*field.H)
	case EdgeBottom:
		pos = core.V(along*field.W, field.H+off)
	default:
		pos = core.V(-off, along*field.H)
	}

	angle := target.Sub(pos).Angle() + (sp.rng.Float64()-0.5)*2*sp.cfg.AimJitter
	speed := (sp.cfg.SpeedMin + sp.rng.Float64()*sp.cfg.SpeedRange) * difficulty

	look := Cosmetic{
		Kind:     sp.pick(PaletteSize),
		Rotation: sp.rng.Float64() * 2 * math.Pi,
		Spin:     (sp.rng.Float64() - 0.5) * 2 * sp.cfg.MaxSpin,
	}

	return Projectile{
		Pos:  pos,
		Vel:  core.Polar(angle, speed),
		Look: look,
	}
}

// pick returns a uniform index in [0, n).
func (sp *Spawner) pick(n int) int {
	return min(int(sp.rng.Float64()*float64(n)), n-1)
}

// spawn adds a sweet aimed at the avatar's current position.
func (e *Engine) spawn() {
	s := e.state
	s.Sweets = append(s.Sweets, e.spawner.Spawn(e.field, s.Avatar.Pos, s.Difficulty))
	s.Spawned++
}
