package control

import "github.com/vovakirdan/lose-weight/internal/core"

// Keyboard is a virtual head moved in steps by direction keys.
type Keyboard struct {
	pos  core.Offset
	step float64
}

// NewKeyboard creates a keyboard source that moves step per key press.
func NewKeyboard(step float64) *Keyboard {
	if step <= 0 {
		step = 0.05
	}
	return &Keyboard{step: step}
}

// Apply moves the virtual head for a direction or center action.
// Other actions are ignored.
func (k *Keyboard) Apply(a core.Action) {
	switch a {
	case core.ActionUp:
		k.pos.Y -= k.step
	case core.ActionDown:
		k.pos.Y += k.step
	case core.ActionLeft:
		k.pos.X -= k.step
	case core.ActionRight:
		k.pos.X += k.step
	case core.ActionCenter:
		k.pos = core.Offset{}
	default:
		return
	}
	k.pos = k.pos.Clamp(EdgeOffset)
}

// Sample implements Source. The keyboard always has a signal.
func (k *Keyboard) Sample() (core.Offset, bool) {
	return k.pos, true
}

// Ready implements Source.
func (k *Keyboard) Ready() bool {
	return true
}

// Name implements Source.
func (k *Keyboard) Name() string {
	return "keyboard"
}
