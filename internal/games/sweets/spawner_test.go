package sweets

import (
	"math"
	"testing"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/core"
)

// headingDelta returns a-b wrapped into [-pi, pi].
func headingDelta(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}

func TestSpawnerEdgesAndExtremes(t *testing.T) {
	field := Field{W: 800, H: 600}
	target := core.V(400, 300)

	// Draw order: edge, along, jitter, speed, kind, rotation, spin
	tests := []struct {
		name       string
		draws      []float64
		difficulty float64
		pos        core.Vec2
		deviation  float64
		speed      float64
	}{
		{"top, min jitter, min speed", []float64{0.1, 0.25, 0, 0, 0, 0, 0.5}, 2, core.V(200, -50), -0.2, 0.5},
		{"right, max jitter, max speed", []float64{0.3, 0.5, 1, 1, 0, 0, 0.5}, 1.5, core.V(850, 300), 0.2, 0.6},
		{"bottom, no jitter, mid speed", []float64{0.6, 0.75, 0.5, 0.5, 0, 0, 0.5}, 3, core.V(600, 650), 0, 0.975},
		{"left corner, min jitter, max speed", []float64{0.99, 0, 0, 1, 0, 0, 0.5}, 2.5, core.V(-50, 0), -0.2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sp := NewSpawner(config.DefaultSweetsConfig().Sweets, &seqRand{vals: tc.draws})
			p := sp.Spawn(field, target, tc.difficulty)

			if !approx(p.Pos.X, tc.pos.X, 1e-9) || !approx(p.Pos.Y, tc.pos.Y, 1e-9) {
				t.Errorf("position = %v, expected %v", p.Pos, tc.pos)
			}
			if !approx(p.Vel.Len(), tc.speed, 1e-9) {
				t.Errorf("speed = %f, expected %f", p.Vel.Len(), tc.speed)
			}
			aim := target.Sub(tc.pos).Angle()
			if d := headingDelta(p.Vel.Angle(), aim); !approx(d, tc.deviation, 1e-9) {
				t.Errorf("aim deviation = %f, expected %f", d, tc.deviation)
			}
		})
	}
}

func TestSpawnerBounds(t *testing.T) {
	cfg := config.DefaultSweetsConfig().Sweets
	sp := NewSpawner(cfg, NewRand(7))
	field := Field{W: 800, H: 600}
	target := core.V(250, 420)
	const difficulty = 1.7

	edges := map[Edge]int{}
	for range 2000 {
		p := sp.Spawn(field, target, difficulty)

		switch {
		case p.Pos.Y == -cfg.SpawnOffset && p.Pos.X >= 0 && p.Pos.X <= field.W:
			edges[EdgeTop]++
		case p.Pos.X == field.W+cfg.SpawnOffset && p.Pos.Y >= 0 && p.Pos.Y <= field.H:
			edges[EdgeRight]++
		case p.Pos.Y == field.H+cfg.SpawnOffset && p.Pos.X >= 0 && p.Pos.X <= field.W:
			edges[EdgeBottom]++
		case p.Pos.X == -cfg.SpawnOffset && p.Pos.Y >= 0 && p.Pos.Y <= field.H:
			edges[EdgeLeft]++
		default:
			t.Fatalf("spawn at %v is not %g px outside an edge", p.Pos, cfg.SpawnOffset)
		}

		if d := headingDelta(p.Vel.Angle(), target.Sub(p.Pos).Angle()); math.Abs(d) > cfg.AimJitter+1e-9 {
			t.Fatalf("aim deviation %f exceeds %f", d, cfg.AimJitter)
		}
		lo, hi := cfg.SpeedMin*difficulty, (cfg.SpeedMin+cfg.SpeedRange)*difficulty
		if v := p.Vel.Len(); v < lo-1e-9 || v > hi+1e-9 {
			t.Fatalf("speed %f outside [%f, %f]", v, lo, hi)
		}
	}

	for _, e := range []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		if edges[e] < 300 {
			t.Errorf("edge %d got %d of 2000 spawns", e, edges[e])
		}
	}
}
