// Package score converts per-level solve times into points.
//
// For level i (1-based) with solve time t:
//   - t > 0:          points = i*10, bonus = i*10 if t <= limit else 0
//   - t == 0 unsolved: points = bonus = 0
package score

import "github.com/samber/lo"

// PointsPerLevel is the multiplier applied to the level number.
const PointsPerLevel = 10

// Level is the score of a single level.
type Level struct {
	Number  int
	Seconds float64
	Points  int
	Bonus   int
}

// Solved reports whether the level was solved.
func (l Level) Solved() bool { return l.Seconds > 0 }

// Result is the score of a whole game.
type Result struct {
	Levels []Level
	Points int
	Bonus  int
	Total  int
}

// Compute scores times against the bonus time limit in seconds.
func Compute(times []float64, limit float64) Result {
	levels := lo.Map(times, func(t float64, i int) Level {
		n := i + 1
		l := Level{Number: n, Seconds: t}
		if t > 0 {
			l.Points = n * PointsPerLevel
			if t <= limit {
				l.Bonus = n * PointsPerLevel
			}
		}
		return l
	})
	points := lo.SumBy(levels, func(l Level) int { return l.Points })
	bonus := lo.SumBy(levels, func(l Level) int { return l.Bonus })
	return Result{
		Levels: levels,
		Points: points,
		Bonus:  bonus,
		Total:  points + bonus,
	}
}
