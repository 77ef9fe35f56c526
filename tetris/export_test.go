package tetris

// SetLevelPoints primes the level-point counter without playing cues.
func (e *Engine) SetLevelPoints(points int) {
	e.levelPoints = points
	e.level = e.policy.Level(points)
	e.updateInterval()
}
