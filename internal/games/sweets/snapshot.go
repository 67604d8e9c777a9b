package sweets

import "math"

// AvatarView is the presenter's read-only view of the avatar.
type AvatarView struct {
	X, Y   float64
	Tilt   float64
	Radius float64
}

// SweetView is the presenter's read-only view of one sweet.
type SweetView struct {
	X, Y     float64
	Kind     int
	Rotation float64
}

// Snapshot captures everything a presenter needs to draw one frame.
// It shares no memory with the engine.
type Snapshot struct {
	Phase       Phase
	Width       float64
	Height      float64
	Avatar      AvatarView
	Sweets      []SweetView
	SweetRadius float64
	Score       float64
	Difficulty  float64
	Elapsed     float64
}

// DisplayScore returns the score as shown to the player.
func (s Snapshot) DisplayScore() int {
	return int(math.Floor(s.Score))
}

// Summary describes a finished run.
type Summary struct {
	FinalScore int
	Difficulty float64 // Multiplier reached
	ElapsedMs  float64
	Spawned    int
	Dodged     int
}

// EndedEvent is emitted exactly once per run, on the tick it ends.
type EndedEvent struct {
	FinalScore int
	Phase      Phase
	Summary    Summary
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	views := make([]SweetView, len(s.Sweets))
	for i, p := range s.Sweets {
		views[i] = SweetView{X: p.Pos.X, Y: p.Pos.Y, Kind: p.Look.Kind, Rotation: p.Look.Rotation}
	}
	return Snapshot{
		Phase:  s.Phase,
		Width:  e.field.W,
		Height: e.field.H,
		Avatar: AvatarView{
			X:      s.Avatar.Pos.X,
			Y:      s.Avatar.Pos.Y,
			Tilt:   s.Avatar.Tilt,
			Radius: e.cfg.Avatar.Radius,
		},
		Sweets:      views,
		SweetRadius: e.cfg.Sweets.Radius,
		Score:       s.Score,
		Difficulty:  s.Difficulty,
		Elapsed:     s.Elapsed,
	}
}
