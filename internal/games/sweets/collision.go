package sweets

import "github.com/vovakirdan/lose-weight/internal/core"

// Hits reports whether a sweet centered at sweet touches an avatar
// centered at avatar. Both are circles; hitDistance already has the
// forgiveness margin subtracted.
func Hits(avatar, sweet core.Vec2, hitDistance float64) bool {
	return avatar.Dist(sweet) < hitDistance
}

// firstHit returns the index of the first sweet touching the avatar, or -1.
func (e *Engine) firstHit() int {
	s := e.state
	limit := e.cfg.HitDistance()
	for i := range s.Sweets {
		if Hits(s.Avatar.Pos, s.Sweets[i].Pos, limit) {
			return i
		}
	}
	return -1
}
