package sweets

// advanceClock accrues score for dt milliseconds of play, recomputes the
// difficulty multiplier and runs the spawn timer.
// It reports whether a sweet is due this tick.
func (e *Engine) advanceClock(dt float64) bool {
	s := e.state
	s.Elapsed += dt
	s.Score += dt * e.cfg.Scoring.PointsPerMs
	s.Difficulty = e.difficulty.Multiplier(s.Score)

	s.SpawnTimer += dt
	if s.SpawnTimer < e.difficulty.SpawnInterval(s.Score) {
		return false
	}
	s.SpawnTimer = 0
	return true
}
