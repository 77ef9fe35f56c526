package tetris

import "time"

// Policy holds the scoring, leveling and speed tables. LineScores is indexed by
// the number of rows cleared at once.
type Policy struct {
	LevelPointsPerLevel int
	LineScores          []int
	SoftDropScore       int
	Intervals           []time.Duration
	AcceleratedInterval time.Duration
}

// DefaultPolicy returns the standard tables.
func DefaultPolicy() Policy {
	return Policy{
		LevelPointsPerLevel: 20,
		LineScores:          []int{0, 100, 300, 500, 800},
		SoftDropScore:       1,
		Intervals: []time.Duration{
			1000 * time.Millisecond, 900 * time.Millisecond, 800 * time.Millisecond,
			700 * time.Millisecond, 600 * time.Millisecond, 500 * time.Millisecond,
			450 * time.Millisecond, 400 * time.Millisecond, 350 * time.Millisecond,
			300 * time.Millisecond, 250 * time.Millisecond, 200 * time.Millisecond,
			180 * time.Millisecond, 160 * time.Millisecond, 140 * time.Millisecond,
			120 * time.Millisecond, 100 * time.Millisecond, 80 * time.Millisecond,
			70 * time.Millisecond, 60 * time.Millisecond,
		},
		AcceleratedInterval: 50 * time.Millisecond,
	}
}

// Level converts the level-point counter to a zero-based level:
// max(0, ceil(points/perLevel) - 1).
func (p Policy) Level(points int) int {
	if points <= 0 || p.LevelPointsPerLevel <= 0 {
		return 0
	}
	level := (points+p.LevelPointsPerLevel-1)/p.LevelPointsPerLevel - 1
	return max(0, level)
}

// LineScore returns the base award for clearing n rows at once.
func (p Policy) LineScore(n int) int {
	if n <= 0 || len(p.LineScores) == 0 {
		return 0
	}
	if n >= len(p.LineScores) {
		return p.LineScores[len(p.LineScores)-1]
	}
	return p.LineScores[n]
}

// Scale applies the level multiplier (1 + level/10) to an increment.
func (p Policy) Scale(increment, level int) float64 {
	return float64(increment) * (1 + float64(level)/10)
}

// Interval returns the fall period for a level. Soft-drop, or a level past the end
// of the table, selects the accelerated interval.
func (p Policy) Interval(level int, softDrop bool) time.Duration {
	if softDrop || level < 0 || level >= len(p.Intervals) {
		return p.AcceleratedInterval
	}
	return p.Intervals[level]
}
