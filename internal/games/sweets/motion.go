package sweets

import "github.com/vovakirdan/lose-weight/internal/core"

// controlTarget maps a control offset to a field position.
// (0, 0) is the center; ±0.5 reaches the edges.
func (e *Engine) controlTarget(off core.Offset) core.Vec2 {
	c := e.field.Center()
	return core.V(c.X+off.X*e.field.W, c.Y+off.Y*e.field.H)
}

// sanitizeControl drops non-finite offsets and clamps the rest.
func (e *Engine) sanitizeControl(ctrl *core.Offset) *core.Offset {
	if ctrl == nil || !ctrl.IsFinite() {
		return nil
	}
	off := ctrl.Clamp(e.cfg.Control.MaxOffset)
	return &off
}

// moveAvatar eases the avatar toward the control target and keeps it
// inside the field. Without a control signal the avatar holds position.
func (e *Engine) moveAvatar(dt float64, ctrl *core.Offset) {
	a := &e.state.Avatar
	prev := a.Pos

	if ctrl != nil {
		target := e.controlTarget(*ctrl)
		follow := e.cfg.Avatar.Follow
		a.Pos = core.V(
			core.Approach(a.Pos.X, target.X, follow),
			core.Approach(a.Pos.Y, target.Y, follow),
		)
	}
	a.Pos = e.field.Inset(a.Pos, e.cfg.Avatar.Radius)

	if dt > 0 {
		a.Vel = a.Pos.Sub(prev).Scale(1 / dt)
	}

	tilt := core.ClampF(a.Vel.X*e.cfg.Avatar.TiltGain, -e.cfg.Avatar.TiltMax, e.cfg.Avatar.TiltMax)
	a.Tilt = core.Approach(a.Tilt, tilt, core.ClampF(dt*e.cfg.Avatar.TiltRate, 0, 1))
}

// integrate advances every sweet along its fixed velocity.
func (e *Engine) integrate(dt float64) {
	sweets := e.state.Sweets
	for i := range sweets {
		p := &sweets[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Look.Rotation += p.Look.Spin * dt
	}
}

// cull drops sweets that left the field by more than the cull margin.
func (e *Engine) cull() {
	s := e.state
	margin := e.cfg.Sweets.CullMargin
	kept := s.Sweets[:0]
	for _, p := range s.Sweets {
		if e.field.Outside(p.Pos, margin) {
			s.Dodged++
			continue
		}
		kept = append(kept, p)
	}
	s.Sweets = kept
}
